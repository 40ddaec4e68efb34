package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Planning  Planning  `mapstructure:",squash"`
	Ingestion Ingestion `mapstructure:",squash"`
	Audit     Audit     `mapstructure:",squash"`
	AuditSync AuditSync `mapstructure:",squash"`
	Upload    Upload    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Planning aponta para o diretório com as planilhas de planejamento mensal.
// FilePattern recebe o mês abreviado e o ano (ex: "Jan", "2026").
type Planning struct {
	Folder      string `mapstructure:"planning_folder"`
	FilePattern string `mapstructure:"planning_file_pattern"`
}

// Ingestion carrega as constantes de negócio da ingestão. TaxRate é a
// alíquota embutida no faturamento bruto dos canais marketplace.
type Ingestion struct {
	TaxRate float64 `mapstructure:"ingestion_tax_rate"`
}

// Audit parametriza a auditoria: LegacyAccount é a conta com contaminação
// histórica de B2B conhecida, verificada linha a linha.
type Audit struct {
	LegacyAccount string `mapstructure:"audit_legacy_account"`
}

type AuditSync struct {
	CronSchedule string `mapstructure:"audit_sync_cron"`
	Enabled      bool   `mapstructure:"audit_sync_enabled"`
}

// Upload guarda a credencial estática compartilhada do upload administrativo.
// KeyHash (bcrypt) tem prioridade sobre Key quando presente.
type Upload struct {
	Key     string `mapstructure:"admin_upload_key"`
	KeyHash string `mapstructure:"admin_upload_key_hash"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ledger")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("PLANNING_FOLDER", "./planning")
	viper.SetDefault("PLANNING_FILE_PATTERN", "ASIN Planning file - %s %s.xlsx")

	viper.SetDefault("INGESTION_TAX_RATE", 0.18)

	viper.SetDefault("AUDIT_LEGACY_ACCOUNT", "Nexlev")

	viper.SetDefault("AUDIT_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("AUDIT_SYNC_ENABLED", false)

	viper.SetDefault("ADMIN_UPLOAD_KEY", "")
	viper.SetDefault("ADMIN_UPLOAD_KEY_HASH", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	locations := []string{".env", "../.env", "../../.env"}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
