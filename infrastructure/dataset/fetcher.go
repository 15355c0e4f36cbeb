package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/zhvi-animator/internal/config"
)

// Tamanho do bloco usado para gravar o corpo da resposta em disco,
// evitando carregar o CSV inteiro em memória.
const downloadChunkSize = 8192

type Fetcher interface {
	EnsureLocal(ctx context.Context) (string, error)
}

type HTTPFetcher struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewFetcher(cfg *config.Config) Fetcher {
	return &HTTPFetcher{
		cfg: cfg,
		// Sem timeout: o download do dataset completo pode demorar e não
		// há política de cancelamento definida para a fase de busca.
		httpClient: &http.Client{},
	}
}

// EnsureLocal garante que uma cópia local do dataset exista e retorna o
// caminho dela. Se o arquivo já existe, nenhum acesso à rede é feito --
// não há verificação de validade nem redownload condicional.
func (f *HTTPFetcher) EnsureLocal(ctx context.Context) (string, error) {
	filename := f.cfg.Dataset.Filename

	if _, err := os.Stat(filename); err == nil {
		logrus.Debugf("Dataset já disponível em %s, download ignorado", filename)
		return filename, nil
	}

	if err := f.download(ctx, f.cfg.Dataset.URL, filename); err != nil {
		return "", err
	}

	return filename, nil
}

// download baixa o dataset e grava no destino em blocos de tamanho fixo.
// Nenhuma nova tentativa é feita em caso de falha.
func (f *HTTPFetcher) download(ctx context.Context, url, filename string) error {
	logrus.Infof("Baixando dataset de %s...", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "erro ao montar a requisição de download")
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao baixar o dataset")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("erro ao baixar o dataset: %s retornou status %s", url, resp.Status)
	}

	// O arquivo só é criado após a checagem de status, então uma resposta
	// de erro nunca deixa arquivo. Um download interrompido, porém, deixa
	// um arquivo parcial que a próxima execução trata como cache.
	out, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar o arquivo local %s", filename)
	}
	defer out.Close()

	buf := make([]byte, downloadChunkSize)
	if _, err := io.CopyBuffer(out, resp.Body, buf); err != nil {
		return errors.Wrapf(err, "erro ao gravar o dataset em %s", filename)
	}

	logrus.Infof("Dataset baixado com sucesso e salvo como %s", filename)
	return nil
}
