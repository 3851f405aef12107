package main

import (
	"flag"
	"log"

	"github.com/mogaika/skn_to_obj/config"
	"github.com/mogaika/skn_to_obj/web"
)

func main() {
	var addr, encoding, configPath string
	flag.StringVar(&addr, "i", "", "Address of server (default :8000)")
	flag.StringVar(&encoding, "encoding", "", "Material names encoding")
	flag.StringVar(&configPath, "config", "", "Path to yaml config")
	flag.Parse()

	if configPath != "" {
		cfg, err := config.LoadFile(configPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := cfg.Apply(); err != nil {
			log.Fatal(err)
		}
		if addr == "" {
			addr = cfg.Listen
		}
	}
	if encoding != "" {
		if err := config.SetEncoding(encoding); err != nil {
			log.Fatal(err)
		}
	}
	if addr == "" {
		addr = ":8000"
	}

	if err := web.StartServer(addr); err != nil {
		log.Fatal(err)
	}
}
