// token JWT_SECRET ile operatör için bearer token üretir.
//
//	go run ./cmd/token -operator ayse
package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/onerilhan/bookkeeping-api/internal/auth"
	"github.com/onerilhan/bookkeeping-api/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdlog.Println(".env dosyası bulunamadı, ortam değişkenlerinden okunacak.")
	}

	operator := flag.String("operator", "", "token sahibi operatör adı")
	ttl := flag.Duration("ttl", 0, "geçerlilik süresi (0 = JWT_TTL)")
	flag.Parse()

	cfg := config.LoadConfig()
	if !cfg.AuthEnabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET tanımlı değil; API kimlik doğrulamasız çalışıyor")
		os.Exit(1)
	}

	lifetime := cfg.JWTTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, expiresAt, err := auth.NewTokenManager(cfg.JWTSecret, lifetime).GenerateToken(*operator)
	if err != nil {
		fmt.Fprintln(os.Stderr, "token üretilemedi:", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintln(os.Stderr, "geçerlilik:", expiresAt.Format(time.RFC3339))
}
