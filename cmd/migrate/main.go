package main

import (
	"casino-engine/pkg/db"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	waitForDB()

	if err := db.Migrate(); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}
}

func waitForDB() {
	timeout := time.NewTimer(time.Second * 10)
	for {
		select {
		case <-timeout.C:
			logrus.Fatal("could not connect to database")
		default:
			err := db.LoadInstance()
			if err == nil {
				return
			}

			logrus.WithError(err).Debug("waiting for database")
			time.Sleep(time.Millisecond * 500)
		}
	}
}
