// migrate gömülü SQL migration'larını yönetir.
//
//	go run ./cmd/migrate up [-steps N]
//	go run ./cmd/migrate down [-steps N]
//	go run ./cmd/migrate version
//	go run ./cmd/migrate force -version N
package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/onerilhan/bookkeeping-api/internal/config"
	"github.com/onerilhan/bookkeeping-api/internal/logger"
	"github.com/onerilhan/bookkeeping-api/internal/migration"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdlog.Println(".env dosyası bulunamadı, ortam değişkenlerinden okunacak.")
	}

	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv, cfg.LogLevel)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	command := os.Args[1]
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	steps := fs.Int("steps", 0, "uygulanacak/geri alınacak adım sayısı (0 = hepsi)")
	version := fs.Int("version", -1, "force için hedef versiyon")
	_ = fs.Parse(os.Args[2:])

	runner, err := migration.NewRunner(cfg.GetDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Migration runner oluşturulamadı")
	}
	defer runner.Close()

	switch command {
	case "up":
		err = runner.Up(*steps)
	case "down":
		err = runner.Down(*steps)
	case "version":
		v, dirty, verr := runner.Version()
		if verr == nil {
			fmt.Printf("version=%d dirty=%t\n", v, dirty)
		}
		err = verr
	case "force":
		if *version < 0 {
			log.Fatal().Msg("force için -version gerekli")
		}
		err = runner.Force(*version)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("❌ Migration komutu başarısız")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "kullanım: migrate <up|down|version|force> [-steps N] [-version N]")
}
