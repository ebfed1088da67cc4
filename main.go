package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dgrijalva/jwt-go"
	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/linkme/linkme-api/api"
	"github.com/linkme/linkme-api/geo"
	"github.com/linkme/linkme-api/help"
	"github.com/linkme/linkme-api/store"
	"github.com/linkme/linkme-api/utils"
)

var (
	server      *api.Server
	ormDB       *gorm.DB
	mongoClient *mongo.Client
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("linkme")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("storage.backend", "postgres")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("i18n.dir", "./i18n")
	viper.SetDefault("jwt.expire", 24*time.Hour)
	viper.SetDefault("mongo.database", "linkme")
	viper.SetDefault("google.language", "bs")
}

// loadTokenIssuer prefers an RSA key file and falls back to a shared secret
func loadTokenIssuer() (*api.TokenIssuer, error) {
	expire := viper.GetDuration("jwt.expire")

	if keyfile := viper.GetString("jwt.keyfile"); keyfile != "" {
		jwtSecretByte, err := ioutil.ReadFile(keyfile)
		if err != nil {
			return nil, err
		}
		jwtPrivateKey, err := jwt.ParseRSAPrivateKeyFromPEMWithPassword(jwtSecretByte, viper.GetString("jwt.password"))
		if err != nil {
			return nil, err
		}
		return api.NewRSATokenIssuer(jwtPrivateKey, expire), nil
	}

	secret := viper.GetString("jwt.secret")
	if secret == "" {
		return nil, fmt.Errorf("either jwt.keyfile or jwt.secret is required")
	}
	return api.NewHMACTokenIssuer([]byte(secret), expire), nil
}

// openStore connects the persistence backend chosen by storage.backend
func openStore(ctx context.Context) (store.LinkCore, error) {
	switch backend := viper.GetString("storage.backend"); backend {
	case "postgres":
		db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
		if err != nil {
			return nil, err
		}
		ormDB = db
		return store.NewLinkStore(db), nil
	case "mongo":
		// initialise mongodb connections
		opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
		opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
		client, err := mongo.NewClient(opts)
		if err != nil {
			return nil, fmt.Errorf("create mongo client with error: %s", err)
		}

		if err := client.Connect(ctx); err != nil {
			return nil, fmt.Errorf("connect mongo database with error: %s", err)
		}
		mongoClient = client
		return store.NewMongoStore(client, viper.GetString("mongo.database")), nil
	case "memory":
		log.WithField("prefix", "init").Warn("using in-memory storage, data is lost on restart")
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		if mongoClient != nil {
			log.Info("Shutting down mongo store")
			if err := mongoClient.Disconnect(ctx); err != nil {
				log.Error(err)
			}
		}

		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	if err := utils.InitI18NBundle(viper.GetString("i18n.dir")); err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded i18n messages")

	tokens, err := loadTokenIssuer()
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded jwt key")

	core, err := openStore(initialCtx)
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Infof("Initialized %s store", viper.GetString("storage.backend"))

	var resolver geo.AddressResolver
	if key := viper.GetString("google.maps.key"); key != "" {
		r, err := geo.NewGoogleMapsResolver(key, viper.GetString("google.language"))
		if err != nil {
			log.Panic(err)
		}
		resolver = r
		log.WithField("prefix", "init").Info("Initialized address resolver")
	}

	service := help.NewService(core,
		utils.NewIdentityHasher(viper.GetString("identity.salt")),
		utils.NewPasswordHasher(viper.GetInt("password.cost")),
		resolver)

	// Init http server
	server = api.NewServer(service, tokens)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
