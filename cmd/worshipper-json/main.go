package main

import (
	"os"

	json "github.com/goccy/go-json"
	"github.com/joho/godotenv"

	"github.com/lambworks/worshipper-data/internal/configuration"
	"github.com/lambworks/worshipper-data/internal/logger"
	"github.com/lambworks/worshipper-data/pkg/decoder"
)

func main() {
	godotenv.Load(".env")
	log := logger.Get()

	settings := configuration.ReadConfiguration("configuration").Converter
	if len(os.Args) > 1 {
		settings.InputPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		settings.OutputPath = os.Args[2]
	}

	buf, err := os.ReadFile(settings.InputPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", settings.InputPath).Msg("error reading worshipper data")
	}

	doc, err := decoder.Decode(buf)
	if err != nil {
		log.Fatal().Err(err).Msg("error decoding worshipper data")
	}

	log.Info().
		Int("bytes", len(buf)).
		Int("global_sets", len(doc.Global)).
		Int("skins", len(doc.Skins)).
		Msg("decoded worshipper data")

	var out []byte
	if settings.Pretty {
		out, err = json.MarshalIndent(doc, "", "  ")
	} else {
		out, err = json.Marshal(doc)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error marshalling document")
	}

	if err := os.WriteFile(settings.OutputPath, out, 0o644); err != nil {
		log.Fatal().Err(err).Str("path", settings.OutputPath).Msg("error writing json")
	}

	log.Info().Str("path", settings.OutputPath).Msg("wrote worshipper data json")
}
