package file

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mesh-intelligence/taskpad/pkg/types"
)

// xmlProlog and xmlDoctype initialize an empty XML target, declaring the
// <Tasks><Task id priority checked>content</Task></Tasks> shape.
const (
	xmlProlog  = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	xmlDoctype = `<!DOCTYPE Tasks [
    <!ELEMENT Tasks (Task*)>
    <!ELEMENT Task (#PCDATA)>
    <!ATTLIST Task id CDATA #REQUIRED>
    <!ATTLIST Task priority CDATA #REQUIRED>
    <!ATTLIST Task checked CDATA #REQUIRED>
]>` + "\n"
)

// XML persists tasks as a <Tasks> document with one <Task> element per
// task, carrying id, priority and checked as attributes and the content
// as character data.
type XML struct {
	path string
}

// Compile-time interface check: XML must implement FilePersister.
var _ types.FilePersister = (*XML)(nil)

// NewXML returns an XML adapter for the given path.
func NewXML(path string) *XML {
	return &XML{path: path}
}

// Path returns the file location.
func (x *XML) Path() string {
	return x.path
}

// Default returns the prolog and DTD that initialize an empty XML target.
func (x *XML) Default() string {
	return xmlProlog + xmlDoctype
}

// Read returns the non-empty lines of the file.
func (x *XML) Read() ([]string, error) {
	return readLines(x.path)
}

// xmlTask is the wire shape of one <Task> element.
type xmlTask struct {
	XMLName  xml.Name `xml:"Task"`
	ID       string   `xml:"id,attr"`
	Priority string   `xml:"priority,attr"`
	Checked  string   `xml:"checked,attr"`
	Content  string   `xml:",chardata"`
}

// Write replaces the file content with the serialized document.
func (x *XML) Write(todo *types.Todo) error {
	elems := make([]xmlTask, 0, len(todo.Tasks))
	for i := range todo.Tasks {
		t := &todo.Tasks[i]
		elems = append(elems, xmlTask{
			ID:       strconv.FormatUint(uint64(t.ID), 10),
			Priority: t.Priority.String(),
			Checked:  strconv.FormatBool(t.Checked),
			Content:  t.Content,
		})
	}

	doc := struct {
		XMLName xml.Name `xml:"Tasks"`
		Tasks   []xmlTask
	}{Tasks: elems}

	body, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", x.path, err)
	}

	content := xmlProlog + string(body) + "\n"
	if err := os.WriteFile(x.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", x.path, err)
	}
	return nil
}

// Tasks decodes the document event by event. Unparsable fragments are
// logged and skipped without aborting the whole read.
func (x *XML) Tasks() ([]types.Task, error) {
	lines, err := x.Read()
	if err != nil {
		return nil, err
	}

	decoder := xml.NewDecoder(strings.NewReader(strings.Join(lines, "\n")))

	var tasks []types.Task
	var current *types.Task

	for {
		tok, err := decoder.Token()
		if err != nil {
			// io.EOF ends the document; anything else is a fragment the
			// decoder could not parse.
			if !errors.Is(err, io.EOF) {
				log.Warn("skipping unparsable XML fragment", "path", x.path, "err", err)
			}
			break
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local != "Task" {
				continue
			}
			task := types.Task{Priority: types.PriorityMed}
			for _, attr := range el.Attr {
				switch attr.Name.Local {
				case "id":
					id64, err := strconv.ParseUint(attr.Value, 10, 32)
					if err != nil {
						log.Warn("unparsable task id; using 0", "path", x.path, "value", attr.Value)
						continue
					}
					task.ID = uint32(id64)
				case "priority":
					task.Priority = types.ParsePriority(attr.Value)
				case "checked":
					task.Checked = attr.Value == "true"
				}
			}
			current = &task

		case xml.CharData:
			if current != nil {
				current.Content += strings.TrimSpace(string(el))
			}

		case xml.EndElement:
			if el.Name.Local == "Task" && current != nil {
				tasks = append(tasks, *current)
				current = nil
			}
		}
	}

	return tasks, nil
}
