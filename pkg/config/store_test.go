package config_test

import (
	"os"
	"strings"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/redshift-provisioner/pkg/config"
	"github.com/redshift-provisioner/pkg/warehouse"
)

func replaceOnce(s, old, new string) string {
	Expect(s).To(ContainSubstring(old))
	return strings.Replace(s, old, new, 1)
}

var _ = Describe("SaveResult", func() {
	const (
		endpointAddress = "wh-1.abc123xyz.us-east-1.redshift.amazonaws.com"
		roleARN         = "arn:aws:iam::123456789012:role/dwhRole"
	)

	var (
		path   string
		result warehouse.Result
	)

	BeforeEach(func() {
		path = copyTestdata("dwh.cfg")
		result = warehouse.Result{
			EndpointAddress: endpointAddress,
			RoleARN:         roleARN,
			VPCId:           "vpc-0a1b2c3d",
		}
	})

	It("changes only the endpoint and the role ARN", func() {
		before, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())

		Expect(config.SaveResult(path, result)).To(Succeed())

		after, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())

		expected := before
		expected.Connection.Host = endpointAddress
		expected.IAMRoleARN = roleARN
		Expect(cmp.Diff(expected, after)).To(BeEmpty())
	})

	It("keeps keys that are not part of the configuration model", func() {
		Expect(config.SaveResult(path, result)).To(Succeed())

		content, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(ContainSubstring("s3://udacity-dend/log_data"))
		Expect(string(content)).To(ContainSubstring("s3://udacity-dend/song_data"))
	})

	It("can be applied repeatedly", func() {
		Expect(config.SaveResult(path, result)).To(Succeed())
		result.EndpointAddress = "wh-1.other.us-east-1.redshift.amazonaws.com"
		Expect(config.SaveResult(path, result)).To(Succeed())

		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Connection.Host).To(Equal("wh-1.other.us-east-1.redshift.amazonaws.com"))
	})

	It("creates the sections when they are missing", func() {
		lowercase := copyTestdata("lowercase.cfg")
		Expect(config.NewFileStore(lowercase).SaveResult(result)).To(Succeed())

		cfg, err := config.Load(lowercase)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Connection.Host).To(Equal(endpointAddress))
		Expect(cfg.IAMRoleARN).To(Equal(roleARN))

		content, err := os.ReadFile(lowercase)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(ContainSubstring("[IAM_ROLE]"))
		Expect(strings.Count(strings.ToLower(string(content)), "[cluster]")).To(Equal(1))
	})

	It("fails when the file is gone", func() {
		Expect(os.Remove(path)).To(Succeed())
		Expect(config.SaveResult(path, result)).To(MatchError(ContainSubstring("dwh.cfg")))
	})
})
