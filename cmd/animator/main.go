package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/zhvi-animator/infrastructure/animation"
	"github.com/vfg2006/zhvi-animator/infrastructure/chart"
	"github.com/vfg2006/zhvi-animator/infrastructure/dataset"
	"github.com/vfg2006/zhvi-animator/internal/config"
	"github.com/vfg2006/zhvi-animator/internal/usecases/animating"
	"github.com/vfg2006/zhvi-animator/internal/usecases/extracting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fetcher := dataset.NewFetcher(cfg)
	extractor := extracting.NewService()
	renderer := chart.NewRenderer(cfg)
	encoder := animation.NewEncoder()

	animator := animating.NewService(cfg, fetcher, extractor, renderer, encoder)

	fmt.Println("Gerador de GIF animado do Zillow Home Value Index (ZHVI)")
	fmt.Println(strings.Repeat("-", 50))

	regionCode, err := readRegionCode()
	if err != nil {
		// Sem entrada interativa disponível (ex.: stdin fechado)
		fmt.Println("\nNão foi possível ler a entrada do usuário. Execute a partir de um terminal,")
		fmt.Println("ou chame animating.Service.Generate diretamente com o código desejado.")
		return
	}

	if regionCode == "" {
		fmt.Println("Nenhum código de região informado. Encerrando.")
		return
	}

	if err := animator.Generate(ctx, regionCode); err != nil {
		logrus.WithError(err).Errorf("Erro ao gerar a animação para a região %s", regionCode)
		return
	}

	fmt.Println("Processo concluído.")
}

// readRegionCode lê uma linha da entrada padrão com o código da região
func readRegionCode() (string, error) {
	fmt.Print("Digite o código da região para gerar a animação: ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("entrada padrão indisponível")
	}

	return strings.TrimSpace(scanner.Text()), nil
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
