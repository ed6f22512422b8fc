package errors

// ErrorConfig error handling ayarları
type ErrorConfig struct {
	ShowStackTrace  bool           // Stack trace'i response'da göster mi (sadece development)
	CustomErrorMap  map[int]string // 500'lük hatalarda client'a gösterilecek mesajlar
	EnablePanicLogs bool           // Panic durumlarında stack trace logla
	MaxErrorLength  int            // Error mesajının maksimum uzunluğu
}

// DefaultErrorConfig varsayılan error handling ayarları
func DefaultErrorConfig() *ErrorConfig {
	return &ErrorConfig{
		ShowStackTrace: false,
		CustomErrorMap: map[int]string{
			500: "Sunucu hatası. Lütfen daha sonra tekrar deneyin.",
			503: "Servis geçici olarak kullanılamıyor.",
		},
		EnablePanicLogs: true,
		MaxErrorLength:  500,
	}
}

// DevelopmentErrorConfig development ortamı için ayarlar
func DevelopmentErrorConfig() *ErrorConfig {
	config := DefaultErrorConfig()
	config.ShowStackTrace = true
	config.MaxErrorLength = 2000
	return config
}

// ProductionErrorConfig production ortamı için güvenli ayarlar
func ProductionErrorConfig() *ErrorConfig {
	config := DefaultErrorConfig()
	config.MaxErrorLength = 200
	return config
}

// ConfigFor ortam adına göre ayar seçer
func ConfigFor(env string) *ErrorConfig {
	if env == "development" {
		return DevelopmentErrorConfig()
	}
	return ProductionErrorConfig()
}
