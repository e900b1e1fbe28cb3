package appinfo

import "runtime"

var Version = "dev"

// Name is used for the config/cache directory and the log file.
const Name = "movie-detail"

type Info struct {
	Version   string
	Platform  string
	UserAgent string
}

func Default() Info {
	info := Info{
		Version:  Version,
		Platform: runtime.GOOS,
	}
	info.UserAgent = Name + "/" + info.Version + " (" + info.Platform + ")"
	return info
}
