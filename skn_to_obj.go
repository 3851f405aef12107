package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mogaika/skn_to_obj/config"
	"github.com/mogaika/skn_to_obj/utils"
)

func main() {
	var sknPath, outDir, name, encoding, configPath, logPath string
	var dump, info bool
	flag.StringVar(&sknPath, "skn", "", "Path to .skn file (or first argument)")
	flag.StringVar(&outDir, "out", "", "Output directory, directory of skn file by default")
	flag.StringVar(&name, "name", "", "Output file name without extension, skn file name by default")
	flag.StringVar(&encoding, "encoding", "", "Material names encoding: "+strings.Join(config.ListEncodings(), ", "))
	flag.StringVar(&configPath, "config", "", "Path to yaml config")
	flag.StringVar(&logPath, "log", "", "Write verbose parsing log to file")
	flag.BoolVar(&dump, "dump", false, "Dump decoded mesh to stdout")
	flag.BoolVar(&info, "info", false, "Print mesh summary in yaml and exit")
	flag.Parse()

	if sknPath == "" && flag.NArg() > 0 {
		sknPath = flag.Arg(0)
	}
	if sknPath == "" {
		flag.PrintDefaults()
		os.Exit(2)
	}

	if configPath != "" {
		cfg, err := config.LoadFile(configPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := cfg.Apply(); err != nil {
			log.Fatal(err)
		}
		if outDir == "" {
			outDir = cfg.OutDir
		}
	}
	if encoding != "" {
		if err := config.SetEncoding(encoding); err != nil {
			log.Fatal(err)
		}
	}

	var exlog *utils.Logger
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			log.Fatalf("Cannot create log file: %v", err)
		}
		defer f.Close()
		exlog = &utils.Logger{Writer: f}
	}

	c := &converter{
		sknPath: sknPath,
		outDir:  outDir,
		name:    name,
		exlog:   exlog,
	}

	if info || dump {
		m, err := c.decode()
		if err != nil {
			log.Fatal(err)
		}
		if dump {
			utils.Dump(m)
		}
		if info {
			data, err := m.Summary().YAML()
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(string(data))
			return
		}
	}

	if _, err := c.convert(); err != nil {
		exlog.Printf("error: %v", err)
		log.Fatalf("[skn2obj] %v", err)
	}
}
