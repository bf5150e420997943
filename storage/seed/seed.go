// Package seed fills the in-memory store at start up.
package seed

import (
	"io/fs"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/trezcool/edulearn/core/catalog"
	"github.com/trezcool/edulearn/core/user"
	appfs "github.com/trezcool/edulearn/fs"
)

const catalogFile = "seed/catalog.yaml"

// CatalogFixture is the layout of a catalog seed file.
type CatalogFixture struct {
	Courses []catalog.Course `yaml:"courses"`
}

// LoadCatalog reads the courses of the YAML file at path, or of the embedded catalog when path is empty.
func LoadCatalog(path string) ([]catalog.Course, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = fs.ReadFile(appfs.FS, catalogFile)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading catalog seed")
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) ([]catalog.Course, error) {
	var fixture CatalogFixture
	if err := yaml.UnmarshalStrict(data, &fixture); err != nil {
		return nil, errors.Wrap(err, "parsing catalog seed")
	}
	return fixture.Courses, nil
}

// Catalog appends the seed courses to repo, in file order.
func Catalog(repo catalog.Repository, path string) (int, error) {
	courses, err := LoadCatalog(path)
	if err != nil {
		return 0, err
	}
	for _, c := range courses {
		repo.AddCourse(c)
	}
	return len(courses), nil
}

// Accounts stores the fixed credential table in repo.
func Accounts(repo user.Repository) error {
	accounts, err := user.DefaultAccounts()
	if err != nil {
		return err
	}
	for _, acc := range accounts {
		if err = repo.CreateAccount(acc); err != nil {
			return errors.Wrap(err, "creating account "+acc.Email)
		}
	}
	return nil
}
