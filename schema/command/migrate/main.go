package main

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/smart-waste/finder-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("waste")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = viper.BindEnv("mongo.conn", "DATABASE_URL")
	_ = viper.BindEnv("mongo.database", "DATABASE_NAME")
}

// ensures every collection index exists; safe to run repeatedly
func main() {
	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
