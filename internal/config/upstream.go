package config

import "time"

type Upstream struct {
	DealsURL    string `env:"UPSTREAM_DEALS_URL" envDefault:"https://www.cheapshark.com/api/1.0/deals" validate:"required,http_url"`
	ProxyURL    string `env:"UPSTREAM_PROXY_URL" envDefault:"https://api.allorigins.win/raw" validate:"omitempty,http_url"`
	ProxyParam  string `env:"UPSTREAM_PROXY_PARAM" envDefault:"url"`
	RedirectURL string `env:"UPSTREAM_REDIRECT_URL" envDefault:"https://www.cheapshark.com/redirect?dealID=" validate:"required,http_url"`

	UpperPrice int `env:"UPSTREAM_UPPER_PRICE" envDefault:"30" validate:"gt=0"`
	Metacritic int `env:"UPSTREAM_METACRITIC" envDefault:"70" validate:"min=0,max=100"`
	PageSize   int `env:"UPSTREAM_PAGE_SIZE" envDefault:"40" validate:"min=1,max=60"`

	Timeout        time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	LogFieldMaxLen int           `env:"UPSTREAM_LOG_FIELD_MAX_LEN" envDefault:"2048"`
}
