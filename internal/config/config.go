package config

type Config struct {
	SiteTitle  string `mapstructure:"siteTitle"`
	BaseURL    string `mapstructure:"baseURL"`
	ContentDir string `mapstructure:"contentDir"`
	StaticDir  string `mapstructure:"staticDir"`
	OutputDir  string `mapstructure:"outputDir"`

	Server struct {
		Host string `mapstructure:"host"`
		Port int    `mapstructure:"port"`
	} `mapstructure:"server"`

	Log struct {
		Level    string `mapstructure:"level"`
		Format   string `mapstructure:"format"`
		Output   string `mapstructure:"output"`
		FilePath string `mapstructure:"filePath"`
	} `mapstructure:"log"`
}
