package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds the application's configuration values.
type Config struct {
	AppName    string `json:"appname"`
	AppEnv     string `json:"appenv"`
	AppPort    uint16 `json:"appport"`
	GinMode    string `json:"ginmode"`
	WebsiteURL string `json:"websiteurl"`
	DBHost     string `json:"dbhost"`
	DBPort     uint16 `json:"dbport"`
	DBName     string `json:"dbname"`
	DBUser     string `json:"dbuser"`
	DBPass     string `json:"dbpass"`
	SMTPHost   string `json:"smtphost"`
	SMTPPort   uint16 `json:"smtpport"`
	SMTPUser   string `json:"smtpuser"`
	SMTPPass   string `json:"smtppass"`
	EmailFrom  string `json:"emailfrom"`
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		// Load environment variables from .env file. Running without one is
		// fine (tests, containers that set real environment variables).
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file loaded: %v", err)
		}

		appPort, _ := strconv.ParseUint(os.Getenv("APPPORT"), 10, 16)
		dbPort, _ := strconv.ParseUint(os.Getenv("DBPORT"), 10, 16)
		smtpPort, _ := strconv.ParseUint(os.Getenv("SMTPPORT"), 10, 16)

		websiteURL := os.Getenv("WEBSITE_URL")
		if websiteURL == "" {
			websiteURL = "http://localhost:3000"
		}

		// Initialize the Config struct with values from environment variables.
		config = &Config{
			AppName:    os.Getenv("APPNAME"),
			AppEnv:     os.Getenv("APPENV"),
			AppPort:    uint16(appPort),
			GinMode:    os.Getenv("GINMODE"),
			WebsiteURL: websiteURL,
			DBHost:     os.Getenv("DBHOST"),
			DBPort:     uint16(dbPort),
			DBName:     os.Getenv("DBNAME"),
			DBUser:     os.Getenv("DBUSER"),
			DBPass:     os.Getenv("DBPASS"),
			SMTPHost:   os.Getenv("SMTPHOST"),
			SMTPPort:   uint16(smtpPort),
			SMTPUser:   os.Getenv("SMTPUSER"),
			SMTPPass:   os.Getenv("SMTPPASS"),
			EmailFrom:  os.Getenv("EMAILFROM"),
		}
	})
	return config
}

var testDBCounter uint64

// ConnectMySQL establishes a connection to a MySQL database using the
// configuration values. In the test environment it hands out a fresh
// in-memory SQLite database instead.
func ConnectMySQL() (*gorm.DB, error) {
	cfg := LoadConfig()
	if cfg.AppEnv == "test" || os.Getenv("APPENV") == "test" {
		n := atomic.AddUint64(&testDBCounter, 1)
		dsn := fmt.Sprintf("file:testdb_config_%d?mode=memory&cache=shared", n)
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
	// Build the Data Source Name (DSN) using the configuration values.
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)

	// Open a database connection.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
