package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Languages is a comma separated list of iso:name pairs, e.g. "en:English,fr:Français".
	Languages       string
	DefaultLanguage string

	FlashHashKey  string
	FlashBlockKey string

	GridFilterRetention     time.Duration
	GridFilterPurgeSchedule string
	MailTemplatesURL        string
}
