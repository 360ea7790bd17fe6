package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres, mysql
		DSN    string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		UseTLS       bool   `yaml:"use_tls"`
	} `yaml:"email"`

	Ledger struct {
		Type     string `yaml:"type"`     // memory, http
		Endpoint string `yaml:"endpoint"` // для http
		// Адрес, под которым бекенд держит эскроу и казну
		TreasuryAddress string `yaml:"treasury_address"`
	} `yaml:"ledger"`

	Bounty struct {
		CooldownDays     int `yaml:"cooldown_days"`      // таймлок выплаты после найма
		ReferrerSharePct int `yaml:"referrer_share_pct"` // доля реферера, остаток - кандидату
	} `yaml:"bounty"`

	Faucet struct {
		MaxAmount     int64 `yaml:"max_amount"`     // максимум за один запрос
		CooldownHours int   `yaml:"cooldown_hours"` // пауза между запросами одного адреса
	} `yaml:"faucet"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")
	serverEnv := os.Getenv("SERVER_ENV")
	portStr := os.Getenv("SERVER_PORT")
	jwtSecret := os.Getenv("JWT_SECRET")

	if dbURL == "" {
		log.Println("Загрузка из config.yaml (режим НЕ-тест)")

		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	log.Println("Загрузка конфигурации из переменных окружения (режим теста)")

	cfg.Database.Driver = "postgres"
	cfg.Database.DSN = dbURL
	cfg.Server.Env = serverEnv
	cfg.Server.Port, _ = strconv.Atoi(portStr)
	cfg.JWT.Secret = jwtSecret
	cfg.JWT.TTL = 60

	cfg.Email.SMTPHost = "smtp.test.com"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "noreply@frontdoor.test"
	cfg.Email.FromName = "FrontDoor"

	cfg.Ledger.Type = "memory"
	cfg.Ledger.TreasuryAddress = "0x00000000000000000000000000000000f407d007"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

// applyDefaults заполняет значения, которые почти никогда не меняют.
// Таймлок в 90 дней - контрактная константа продукта, не крутилка.
func applyDefaults(cfg *Config) {
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.Bounty.CooldownDays == 0 {
		cfg.Bounty.CooldownDays = 90
	}
	if cfg.Bounty.ReferrerSharePct == 0 {
		cfg.Bounty.ReferrerSharePct = 50
	}
	if cfg.Faucet.MaxAmount == 0 {
		cfg.Faucet.MaxAmount = 5_000_000
	}
	if cfg.Faucet.CooldownHours == 0 {
		cfg.Faucet.CooldownHours = 24
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
