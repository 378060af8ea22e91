package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/andrewyi/codeharvest/src/server"
)

func main() {

	app := cli.NewApp()

	app.Name = "codeharvest"
	app.Version = "0.1.0"
	app.Usage = "download every file referenced by a code search"
	app.ArgsUsage = "<search term> [<search term>...]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config,c",
			Usage: "配置文件，不存在时使用默认配置",
			Value: "./config.yaml",
		},
	}

	s := server.NewServer()
	app.Action = s.Start

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
