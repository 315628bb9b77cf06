package topic

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	apperrors "github.com/matzehuels/ripple/pkg/errors"
)

// envelope is the wire shape pushed by the topic extraction service.
type envelope struct {
	Event  string  `json:"event" toml:"event"`
	Topics []Topic `json:"topics" toml:"topics"`
}

// Step is one recorded topic list of a replay.
type Step struct {
	Topics []Topic `json:"topics" toml:"topics"`
}

type recording struct {
	Steps []Step `json:"steps" toml:"steps"`
}

// ReadFile loads a topic list from a .json or .toml file.
func ReadFile(path string) ([]Topic, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	if isTOML(path) {
		var env envelope
		if err := toml.Unmarshal(data, &env); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidTopics, err, "parse %s", path)
		}
		return validated(env.Topics)
	}
	topics, err := ParseJSON(data)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidTopics, err, "parse %s", path)
	}
	return topics, nil
}

// ParseJSON decodes either a bare topic array or an envelope object.
func ParseJSON(data []byte) ([]Topic, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidTopics, "empty topic document")
	}
	if trimmed[0] == '[' {
		var topics []Topic
		if err := json.Unmarshal(trimmed, &topics); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidTopics, err, "decode topic array")
		}
		return validated(topics)
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidTopics, err, "decode topic envelope")
	}
	if env.Event != "" && env.Event != "topics" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidTopics, "unexpected event %q", env.Event)
	}
	return validated(env.Topics)
}

// ReadSteps loads a recorded sequence of topic lists from a .json or .toml
// file with a top-level "steps" list.
func ReadSteps(path string) ([]Step, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	var rec recording
	if isTOML(path) {
		err = toml.Unmarshal(data, &rec)
	} else {
		err = json.Unmarshal(data, &rec)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidTopics, err, "parse %s", path)
	}
	if len(rec.Steps) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidTopics, "%s contains no steps", path)
	}
	for i, s := range rec.Steps {
		if _, err := validated(s.Topics); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidTopics, err, "step %d", i)
		}
	}
	return rec.Steps, nil
}

func readInput(path string) ([]byte, error) {
	if err := apperrors.ValidatePath(path); err != nil {
		return nil, err
	}
	if err := apperrors.ValidateExtension(path, ".json", ".toml"); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "topic file %s", path)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "read %s", path)
	}
	return data, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func validated(topics []Topic) ([]Topic, error) {
	for _, t := range topics {
		if err := apperrors.ValidateTopicID(t.ID); err != nil {
			return nil, err
		}
	}
	if topics == nil {
		topics = []Topic{}
	}
	return topics, nil
}
