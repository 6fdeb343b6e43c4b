package config

import (
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"github.com/redshift-provisioner/pkg/warehouse"
)

// SaveResult writes the cluster endpoint to [CLUSTER] HOST and the role ARN to [IAM_ROLE] ARN.
// Every other section and key is written back unchanged.
func SaveResult(path string, result warehouse.Result) error {
	file, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return errors.Wrapf(err, "failed to read configuration file %q", path)
	}

	set(file, SectionCluster, "HOST", result.EndpointAddress)
	set(file, SectionIAMRole, "ARN", result.RoleARN)

	err = file.SaveTo(path)
	if err != nil {
		return errors.Wrapf(err, "failed to write configuration file %q", path)
	}

	return nil
}

func set(file *ini.File, section, name, value string) {
	if k := lookup(file, section, name); k != nil {
		k.SetValue(value)
		return
	}

	s := lookupSection(file, section)
	if s == nil {
		s = file.Section(section)
	}
	s.Key(name).SetValue(value)
}

// FileStore persists provisioning results into a configuration file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) SaveResult(result warehouse.Result) error {
	return SaveResult(s.path, result)
}
