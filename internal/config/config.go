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
	Dataset   Dataset   `mapstructure:",squash"`
	Chart     Chart     `mapstructure:",squash"`
	Animation Animation `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Dataset struct {
	URL      string `mapstructure:"dataset_url"`
	Filename string `mapstructure:"dataset_filename"`
}

type Chart struct {
	WidthInches  float64 `mapstructure:"chart_width_inches"`
	HeightInches float64 `mapstructure:"chart_height_inches"`
}

type Animation struct {
	FrameBudget int    `mapstructure:"frame_budget"`
	OutputDir   string `mapstructure:"output_dir"`
}

func SetDefaults() {
	// URL dos dados ZHVI da Zillow (tier médio, SFR/Condo, suavizado, ajustado sazonalmente, mensal)
	viper.SetDefault("DATASET_URL", "https://files.zillowstatic.com/research/public_csvs/zhvi/Zip_zhvi_uc_sfrcondo_tier_0.33_0.67_sm_sa_month.csv")
	viper.SetDefault("DATASET_FILENAME", "zhvi_zip_data.csv")

	viper.SetDefault("CHART_WIDTH_INCHES", 12.0)
	viper.SetDefault("CHART_HEIGHT_INCHES", 7.0)

	// Limite de quadros para manter o tamanho do GIF e o tempo de renderização sob controle
	viper.SetDefault("FRAME_BUDGET", 150)
	viper.SetDefault("OUTPUT_DIR", ".")

	viper.SetDefault("LOG_LEVEL", "info")
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
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	// Tentar localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}
}
