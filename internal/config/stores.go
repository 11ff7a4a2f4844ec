package config

type Stores struct {
	IDs    []string          `env:"STORE_IDS" envDefault:"1,7,11,23,25" validate:"min=1,dive,numeric"`
	Labels map[string]string `env:"STORE_LABELS" envDefault:"1:Steam,7:Epic Games,11:GOG,23:Humble Bundle,25:Fanatical"`
}
