package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/linkme/linkme-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("linkme")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "", "[optional] path of configuration file")
	flag.Parse()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			panic(err)
		}
	}

	switch backend := viper.GetString("storage.backend"); backend {
	case "mongo":
		fmt.Println("create mongo indexes")
		schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
	case "", "postgres":
		migratePostgres()
	default:
		panic(fmt.Sprintf("nothing to migrate for storage backend: %s", backend))
	}
}

func migratePostgres() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS linkme`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO linkme").Error; err != nil {
		panic(err)
	}

	fmt.Println("migrate postgres tables")
	if err := schema.AutoMigrate(db); err != nil {
		panic(err)
	}
}
