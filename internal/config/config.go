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
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Google    Google    `mapstructure:",squash"`
	Pipedrive Pipedrive `mapstructure:",squash"`
	Estimate  Estimate  `mapstructure:",squash"`
	KeepAlive KeepAlive `mapstructure:",squash"`
	Render    Render    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Google concentra identificadores das planilhas/pastas e as fontes do
// service account. CredentialsJSON tem precedência sobre o arquivo local.
type Google struct {
	CredentialsJSON       string `mapstructure:"google_credentials"`
	CredentialsFile       string `mapstructure:"google_credentials_file"`
	DriveFolderID         string `mapstructure:"google_drive_folder_id"`
	TemplateSheetID       string `mapstructure:"template_sheet_id"`
	EstimateFolderID      string `mapstructure:"estimate_folder_id"`
	DataCollectionSheetID string `mapstructure:"data_collection_sheet_id"`
}

type Pipedrive struct {
	APIToken   string `mapstructure:"pipedrive_api_token"`
	Domain     string `mapstructure:"pipedrive_domain"`
	PipelineID int    `mapstructure:"pipedrive_pipeline_id"`
	StageID    int    `mapstructure:"pipedrive_stage_id"`
}

type Estimate struct {
	TemplateRevision string `mapstructure:"estimate_template_revision"`
	CounterFile      string `mapstructure:"estimate_counter_file"`
}

type KeepAlive struct {
	CronSchedule string `mapstructure:"keep_alive_cron"`
	TargetURL    string `mapstructure:"keep_alive_url"`
	Enabled      bool   `mapstructure:"keep_alive_enabled"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 9000)

	viper.SetDefault("GOOGLE_CREDENTIALS", "")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "creds.json")
	viper.SetDefault("GOOGLE_DRIVE_FOLDER_ID", "1uMd2VH07SP1qNsrrwh8IUH4eQuQf6Z9X")
	viper.SetDefault("TEMPLATE_SHEET_ID", "1Rf7dGonf0HgAfZ-XS3cW1Hp3V-NiOTWbt8m_qRtyzBY")
	viper.SetDefault("ESTIMATE_FOLDER_ID", "1WNknyHABe-co_ypAM0uGM_Z9z_62STeS")
	viper.SetDefault("DATA_COLLECTION_SHEET_ID", "1lanDTaqOzAXFQaZcqj91X6kknbpHXREH3bLQrTeVq6Q")

	viper.SetDefault("PIPEDRIVE_API_TOKEN", "")
	viper.SetDefault("PIPEDRIVE_DOMAIN", "api.pipedrive.com")
	viper.SetDefault("PIPEDRIVE_PIPELINE_ID", 4)
	viper.SetDefault("PIPEDRIVE_STAGE_ID", 47)

	viper.SetDefault("ESTIMATE_TEMPLATE_REVISION", "2025")
	viper.SetDefault("ESTIMATE_COUNTER_FILE", "pdf_count.json")

	// Ping próprio a cada 14 minutos para o free tier do Render não dormir
	viper.SetDefault("KEEP_ALIVE_CRON", "*/14 * * * *")
	viper.SetDefault("KEEP_ALIVE_URL", "")
	viper.SetDefault("KEEP_ALIVE_ENABLED", false)

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Carregar o .env primeiro via godotenv (ambiente local)
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não encontrou .env):", err)
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

// loadEnvFile procura o .env nas localizações usuais do repositório
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}
}
