package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/birdayz/toolbelt"
	"github.com/birdayz/toolbelt/kserde"
)

const (
	formatAuto = "auto"
	formatJSON = "json"
	formatYAML = "yaml"
)

type document struct {
	name   string
	format string
	value  any
}

func resolveFormat(format, name string) (string, error) {
	switch strings.ToLower(format) {
	case formatJSON:
		return formatJSON, nil
	case formatYAML, "yml":
		return formatYAML, nil
	case formatAuto, "":
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
			return formatYAML, nil
		}
		return formatJSON, nil
	}
	return "", fmt.Errorf("unknown format %q (want json, yaml or auto)", format)
}

func decodeDocument(name, format string, data []byte) (document, error) {
	f, err := resolveFormat(format, name)
	if err != nil {
		return document{}, err
	}

	de := kserde.JSONDeserializer[any]()
	if f == formatYAML {
		de = kserde.YAMLDeserializer[any]()
	}

	v, err := de(data)
	if err != nil {
		return document{}, fmt.Errorf("%s: decode %s: %w", name, f, err)
	}
	return document{name: name, format: f, value: v}, nil
}

func encodeDocument(w io.Writer, format string, v any) error {
	ser := kserde.JSONIndentSerializer[any]()
	if format == formatYAML {
		ser = kserde.YAMLSerializer[any]()
	}

	out, err := ser(v)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

// readDocument reads path, or stdin when path is "-".
func readDocument(stdin io.Reader, path, format string) (document, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return document{}, fmt.Errorf("read stdin: %w", err)
		}
		return decodeDocument("stdin", format, data)
	}

	f, err := os.Open(path)
	if err != nil {
		return document{}, err
	}
	defer toolbelt.Serial(toolbelt.Func(func() { _ = f.Close() }))()

	data, err := io.ReadAll(f)
	if err != nil {
		return document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return decodeDocument(path, format, data)
}
