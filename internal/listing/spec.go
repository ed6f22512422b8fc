package listing

import "sort"

// Spec bir varlığın listeleme tanımı. Tüm alanlar sabit SQL parçalarıdır,
// kullanıcı girdisi asla buraya girmez.
type Spec struct {
	Entity        string            // log ve hata mesajları için
	Select        string            // SELECT listesi
	From          string            // tablo + JOIN'ler
	IDColumn      string            // benzersiz id, count ve son sıralama için
	NameColumn    string            // arama varken tam eşleşme öne alınır; boşsa devre dışı
	SearchColumns []string          // ILIKE ile OR'lanan kolonlar
	SortColumns   map[string]string // izin verilen sort_by -> SQL ifadesi
	DefaultSort   string
	DefaultOrder  SortOrder
}

// SortKeys izin verilen sıralama anahtarları (alfabetik)
func (s *Spec) SortKeys() []string {
	keys := make([]string, 0, len(s.SortColumns))
	for key := range s.SortColumns {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
