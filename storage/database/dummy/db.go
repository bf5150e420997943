package dummydb

import (
	"sync"

	"github.com/trezcool/edulearn/core/catalog"
	"github.com/trezcool/edulearn/core/session"
	"github.com/trezcool/edulearn/core/user"
)

type (
	DB struct {
		course  *courseTable
		account *accountTable
		session *sessionTable
	}

	// courseTable is replaced as a whole on every write; readers copy out.
	courseTable struct {
		sync.RWMutex
		rows []catalog.Course
	}

	accountTable struct {
		sync.RWMutex
		rows []user.Account
	}

	sessionTable struct {
		sync.RWMutex
		table map[string]*session.Session
	}
)

func Open() *DB {
	return &DB{
		course:  &courseTable{rows: make([]catalog.Course, 0)},
		account: &accountTable{rows: make([]user.Account, 0)},
		session: &sessionTable{table: make(map[string]*session.Session)},
	}
}
