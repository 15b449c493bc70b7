package config

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"database"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	Media  MediaConfig  `mapstructure:"media"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

// JWTConfig 会话令牌配置
type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
	Issuer      string `mapstructure:"issuer"`
}

// MediaConfig 上传文件存储配置
type MediaConfig struct {
	UploadDir        string `mapstructure:"upload_dir"`
	PublicBaseURL    string `mapstructure:"public_base_url"`
	MaxAvatarSize    int64  `mapstructure:"max_avatar_size"`
	MaxThumbnailSize int64  `mapstructure:"max_thumbnail_size"`
}
