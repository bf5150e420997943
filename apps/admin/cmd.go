package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"syscall"
	"text/tabwriter"

	"github.com/pkg/errors"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/trezcool/edulearn/core/catalog"
	"github.com/trezcool/edulearn/core/user"
	"github.com/trezcool/edulearn/storage/seed"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	catalogSvc *catalog.Service
	usrSvc     *user.Service
	out        io.Writer
}

func (cli *commandLine) printUsage() {
	_, _ = fmt.Fprintln(cli.out, "Usage:")
	_, _ = fmt.Fprintln(cli.out, "  courses [-format table|json|yaml] - list the catalog")
	_, _ = fmt.Fprintln(cli.out, "  stats - print catalog totals")
	_, _ = fmt.Fprintln(cli.out, "  login -email EMAIL - check credentials; the password is prompted next")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	coursesCmd := flag.NewFlagSet("courses", flag.ContinueOnError)
	coursesCmd.SetOutput(cli.out)
	coursesFormat := coursesCmd.String("format", "table", "Output format: table, json or yaml.")

	loginCmd := flag.NewFlagSet("login", flag.ContinueOnError)
	loginCmd.SetOutput(cli.out)
	loginEmail := loginCmd.String("email", "", "The account email. The password will be prompted next.")

	switch args[1] {
	case "courses":
		if err := coursesCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.listCourses(*coursesFormat)
	case "stats":
		return cli.printStats()
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginEmail == "" {
			loginCmd.Usage()
			return errHelp
		}
		_, _ = fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		_, _ = fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(*loginEmail, string(pwd))
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) listCourses(format string) error {
	courses := cli.catalogSvc.QueryAll()

	switch format {
	case "json":
		enc := json.NewEncoder(cli.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(courses), "encoding courses")
	case "yaml":
		data, err := yaml.Marshal(seed.CatalogFixture{Courses: courses})
		if err != nil {
			return errors.Wrap(err, "encoding courses")
		}
		_, err = cli.out.Write(data)
		return err
	case "table":
		w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "ID\tTITLE\tINSTRUCTOR\tLEVEL\tTOPICS\tENROLLED\tRATING")
		for _, c := range courses {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%.1f\n",
				c.ID, c.Title, c.Instructor, c.Level, len(c.Topics), c.Enrolled, c.Rating)
		}
		return w.Flush()
	default:
		return errors.Errorf("unknown format %q", format)
	}
}

func (cli *commandLine) printStats() error {
	stats := cli.catalogSvc.Stats()
	_, err := fmt.Fprintf(cli.out, "courses: %d\nenrolled: %d\naverage rating: %.1f\ntopics: %d\n",
		stats.TotalCourses, stats.TotalEnrolled, stats.AverageRating, stats.TotalTopics)
	return err
}

func (cli *commandLine) login(email, pwd string) error {
	usr, err := cli.usrSvc.Authenticate(email, pwd)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cli.out, "%s <%s>: %s\n", usr.Name, usr.Email, usr.Role)
	return err
}
