package config

type AppConfig struct {
	Server ServerConfig
	Log    LogConfig
	Vision VisionConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	serverCfg, err := LoadServer()
	if err != nil {
		return AppConfig{}, err
	}
	visionCfg, err := LoadVision()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Server: serverCfg,
		Log:    logCfg,
		Vision: visionCfg,
	}, nil
}
