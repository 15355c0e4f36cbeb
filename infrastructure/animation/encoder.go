package animation

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Limiares de quantidade de quadros que definem a velocidade da animação
const (
	slowTierMaxFrames = 50  // abaixo disso a animação roda mais devagar
	fastTierMinFrames = 120 // acima disso a animação roda mais rápido
)

// Duração de exibição de cada quadro por faixa
const (
	slowFrameDelay    = 300 * time.Millisecond
	defaultFrameDelay = 150 * time.Millisecond
	fastFrameDelay    = 100 * time.Millisecond
)

type GIFEncoder struct{}

func NewEncoder() *GIFEncoder {
	return &GIFEncoder{}
}

// FrameDelay escolhe a duração uniforme de exibição por quadro em função
// apenas da quantidade total de quadros: animações curtas rodam mais
// devagar, longas mais rápido.
func FrameDelay(frameCount int) time.Duration {
	switch {
	case frameCount < slowTierMaxFrames:
		return slowFrameDelay
	case frameCount > fastTierMinFrames:
		return fastFrameDelay
	default:
		return defaultFrameDelay
	}
}

// Encode lê os quadros PNG na ordem recebida e grava todos em um único
// GIF animado em outPath, com a duração escolhida por FrameDelay. Não há
// variação de duração por quadro nem configuração de repetição.
func (e *GIFEncoder) Encode(framePaths []string, outPath string) error {
	delay := FrameDelay(len(framePaths))
	hundredths := int(delay / (10 * time.Millisecond))

	logrus.Infof("Criando GIF animado %s com %d quadros (%v por quadro)...",
		outPath, len(framePaths), delay)

	anim := &gif.GIF{}
	for _, path := range framePaths {
		frame, err := loadFrame(path)
		if err != nil {
			return err
		}

		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, hundredths)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar o arquivo %s", outPath)
	}
	defer out.Close()

	if err := gif.EncodeAll(out, anim); err != nil {
		return errors.Wrap(err, "erro ao codificar o GIF")
	}

	return nil
}

// loadFrame decodifica um quadro PNG e o converte para imagem com paleta,
// exigência do formato GIF.
func loadFrame(path string) (*image.Paletted, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o quadro %s", path)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar o quadro %s", path)
	}

	paletted := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(paletted, img.Bounds(), img, image.Point{})

	return paletted, nil
}
