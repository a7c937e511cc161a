package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// InteractiveConfiguration asks the user for values, using the defaults, then saves.
func InteractiveConfiguration() error {
	fmt.Println("permsctl Configuration")
	fmt.Println("")
	fmt.Println("Press enter to keep the current value of any setting.")
	fmt.Printf("Results will be saved to %v\n\n", color.BlueString(GetFilePath()))

	// Create a default config by reading in whatever config currently exists.
	config, err := New()
	if err != nil {
		return err
	}

	if config.EditorURL, err = promptValue("Web editor URL template", config.EditorURL); err != nil {
		return err
	}
	if config.BytebinAddress, err = promptValue("Paste service address", config.BytebinAddress); err != nil {
		return err
	}
	if config.DataFile, err = promptValue("Data file", config.DataFile); err != nil {
		return err
	}
	if config.Actor, err = promptValue("Actor", config.Actor); err != nil {
		return err
	}

	config.BytebinAddress = strings.TrimSpace(config.BytebinAddress)
	if config.BytebinAddress == "" {
		return errors.New("blank paste service address not allowed")
	}

	return WriteConfig(config, GetFilePath())
}

func promptValue(name, defaultVal string) (string, error) {
	fmt.Printf("%s [%v]: ", name, defaultVal)

	// Read in a new value.
	reader := bufio.NewReader(os.Stdin)
	newValue, err := reader.ReadString('\n')
	if err != nil {
		return "", errors.WithStack(err)
	}

	// Trim excess space. If no value was specified, use the existing or default value.
	newValue = strings.TrimSpace(newValue)
	if newValue == "" {
		return defaultVal, nil
	}

	return newValue, nil
}
