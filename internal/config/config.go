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
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	Export         Export         `mapstructure:",squash"`
	ReportSnapshot ReportSnapshot `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Dataset struct {
	Path             string `mapstructure:"dataset_path"`
	PreviewRows      int    `mapstructure:"dataset_preview_rows"`
	TopProductsLimit int    `mapstructure:"dataset_top_products_limit"`
}

type Export struct {
	OutputDir     string `mapstructure:"export_output_dir"`
	DefaultFormat string `mapstructure:"export_default_format"`
}

type ReportSnapshot struct {
	CronSchedule string `mapstructure:"report_snapshot_cron"`
	Enabled      bool   `mapstructure:"report_snapshot_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATASET_PATH", "Cleaned_Superstore_Sales_Dataset.csv")
	viper.SetDefault("DATASET_PREVIEW_ROWS", 5)
	viper.SetDefault("DATASET_TOP_PRODUCTS_LIMIT", 10)

	viper.SetDefault("EXPORT_OUTPUT_DIR", "exports")
	viper.SetDefault("EXPORT_DEFAULT_FORMAT", "xlsx")

	// Defaults do snapshot diário do relatório
	viper.SetDefault("REPORT_SNAPSHOT_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("REPORT_SNAPSHOT_ENABLED", false)    // Habilitar snapshot agendado

	viper.SetDefault("LOG_LEVEL", "debug")
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
	// Obter diretório atual
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

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
