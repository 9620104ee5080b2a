package config

import (
	"flag"
	"os"
	"time"

	"github.com/AaronBlvde/wiki-platform/internal/flagx"
)

func parseFlags(config *Config) {

	fs := flag.NewFlagSet("wiki", flag.ContinueOnError)

	endpointAddr := fs.String("a", config.EndpointAddr, "address and port to run server")
	databaseURL := fs.String("d", config.DatabaseURL, "database url")
	identityAddr := fs.String("i", config.IdentityAddr, "identity service base url")
	verifyTimeout := fs.Int("t", int(config.VerifyTimeout.Seconds()), "verification request timeout in seconds")
	verifyMaxAttempts := fs.Uint64("n", config.VerifyMaxAttempts, "max verification attempts per request")
	verifyRetryDelay := fs.Int("w", int(config.VerifyRetryDelay.Seconds()), "delay between verification attempts in seconds")
	restrictEdits := fs.Bool("e", config.RestrictEditsToAuthor, "allow only the author to edit an article")

	if err := fs.Parse(flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-i", "-t", "-n", "-w", "-e"})); err != nil {
		return
	}

	config.EndpointAddr = *endpointAddr
	config.DatabaseURL = *databaseURL
	config.IdentityAddr = *identityAddr
	config.VerifyTimeout = time.Duration(*verifyTimeout) * time.Second
	config.VerifyMaxAttempts = *verifyMaxAttempts
	config.VerifyRetryDelay = time.Duration(*verifyRetryDelay) * time.Second
	config.RestrictEditsToAuthor = *restrictEdits
}
