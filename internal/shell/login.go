package shell

import (
	"fmt"
	"io"
	"strconv"

	"github.com/wordbase-dev/wordbase/internal/config"
)

// Login collects connection credentials. The resolved parameters
// provide the defaults; an empty answer keeps the resolved value. In
// non-interactive mode the resolved host, port and user are echoed in
// the same transcript format and only the password is prompted (with
// hidden input either way).
func Login(in Prompter, out io.Writer, p *config.Params, interactive bool) (*config.Params, error) {
	creds := *p

	if interactive {
		host, err := in.Prompt(fmt.Sprintf("What host to connect to (%s): ", p.Host))
		if err != nil {
			return nil, err
		}
		if host != "" {
			creds.Host = host
		}

		portAnswer, err := in.Prompt(fmt.Sprintf("What port to connect to (%d): ", p.Port))
		if err != nil {
			return nil, err
		}
		if portAnswer != "" {
			port, err := strconv.Atoi(portAnswer)
			if err != nil || port <= 0 {
				return nil, fmt.Errorf("%w: %q", config.ErrInvalidPort, portAnswer)
			}
			creds.Port = port
		}

		user, err := in.Prompt(fmt.Sprintf("What user to connect to (%s): ", p.User))
		if err != nil {
			return nil, err
		}
		if user != "" {
			creds.User = user
		}
	} else {
		_, _ = fmt.Fprintf(out, "What host to connect to (%s): %s\n", p.Host, p.Host)
		_, _ = fmt.Fprintf(out, "What port to connect to (%d): %d\n", p.Port, p.Port)
		_, _ = fmt.Fprintf(out, "What user to connect to (%s): %s\n", p.User, p.User)
	}

	password, err := in.PromptSecret("What password to connect with: ")
	if err != nil {
		return nil, err
	}
	if password != "" {
		creds.Password = password
	}

	return &creds, nil
}
