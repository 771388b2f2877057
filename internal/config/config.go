package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Cache struct {
		ProfileTTL time.Duration `mapstructure:"profile_ttl"`
	} `mapstructure:"cache"`
	Kafka struct {
		Brokers       []string `mapstructure:"brokers"`
		AboutTopic    string   `mapstructure:"about_topic"`
		ConsumerGroup string   `mapstructure:"consumer_group"`
	} `mapstructure:"kafka"`
	Auth struct {
		JWTSecret     string        `mapstructure:"jwt_secret"`
		TokenLifespan time.Duration `mapstructure:"token_lifespan"`
	} `mapstructure:"auth"`
	Jaeger struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"jaeger"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
	Site struct {
		URL    string `mapstructure:"url"`
		Title  string `mapstructure:"title"`
		Author string `mapstructure:"author"`
	} `mapstructure:"site"`
}

// LoadConfig reads .env and config.yaml from path, then lets the environment
// override individual keys.
func LoadConfig(path string) (cfg Config, err error) {
	if err = godotenv.Load(path + "/.env"); err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read environment only. Error: %v", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")
	v.BindEnv("cache.profile_ttl", "CACHE_PROFILE_TTL")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("kafka.about_topic", "KAFKA_ABOUT_TOPIC")
	v.BindEnv("kafka.consumer_group", "KAFKA_CONSUMER_GROUP")
	v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	v.BindEnv("auth.token_lifespan", "TOKEN_LIFESPAN")
	v.BindEnv("jaeger.otlp_endpoint", "JAEGER_OTLP_ENDPOINT")
	v.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")
	v.BindEnv("site.url", "SITE_URL")
	v.BindEnv("site.title", "SITE_TITLE")
	v.BindEnv("site.author", "SITE_AUTHOR")

	err = v.Unmarshal(&cfg)
	return
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.profile_ttl", 10*time.Minute)
	v.SetDefault("kafka.about_topic", "about.events")
	v.SetDefault("kafka.consumer_group", "about-cache-warmer")
	v.SetDefault("auth.token_lifespan", 24*time.Hour)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("site.url", "http://localhost:3000")
	v.SetDefault("site.title", "Dev Blog")
	v.SetDefault("site.author", "Blog Owner")
}
