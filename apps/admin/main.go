package main

import (
	"log"
	"os"

	"github.com/trezcool/edulearn/core"
	"github.com/trezcool/edulearn/core/catalog"
	"github.com/trezcool/edulearn/core/user"
	dummydb "github.com/trezcool/edulearn/storage/database/dummy"
	"github.com/trezcool/edulearn/storage/seed"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// set up DB
	db := dummydb.Open()
	courseRepo := dummydb.NewCourseRepository(db)
	accountRepo := dummydb.NewAccountRepository(db)
	errAndDie(seed.Accounts(accountRepo))
	_, err := seed.Catalog(courseRepo, conf.CatalogSeedFile)
	errAndDie(err)

	// start CLI
	cli := commandLine{
		catalogSvc: catalog.NewService(courseRepo, nil, nil, nil),
		usrSvc:     user.NewService(accountRepo),
		out:        os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
