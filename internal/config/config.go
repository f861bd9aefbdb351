package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Dataset     Dataset     `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	DatasetSync DatasetSync `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	Development bool   `mapstructure:"development"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Dataset aponta para o CSV de campanhas que alimenta o dashboard
type Dataset struct {
	Path string `mapstructure:"dataset_path"`
}

type Auth struct {
	Username             string `mapstructure:"dashboard_user"`
	PasswordHash         string `mapstructure:"dashboard_password_hash"`
	TokenExpirationHours int    `mapstructure:"token_expiration_hours"`
}

type DatasetSync struct {
	CronSchedule string `mapstructure:"dataset_sync_cron"`
	Enabled      bool   `mapstructure:"dataset_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATASET_PATH", "A_B_testing_dataset.csv")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("DASHBOARD_USER", "analyst")
	// Hash bcrypt da senha do analista; sem default para não subir com senha conhecida
	viper.SetDefault("DASHBOARD_PASSWORD_HASH", "")
	viper.SetDefault("TOKEN_EXPIRATION_HOURS", 24)

	// Defaults para recarga do dataset
	viper.SetDefault("DATASET_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("DATASET_SYNC_ENABLED", false)    // Habilitar recarga agendada do dataset

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("DEVELOPMENT", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
