package config

type Bot struct {
	// Token enables the chat bot when set.
	Token    string `env:"BOT_TOKEN" json:"-"`
	MaxDeals int    `env:"BOT_MAX_DEALS" envDefault:"10" validate:"min=1,max=50"`
}
