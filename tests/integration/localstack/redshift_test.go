package localstack_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/redshift-provisioner/pkg/key"
	"github.com/redshift-provisioner/pkg/warehouse"
	"github.com/redshift-provisioner/tests"
)

var _ = Describe("Redshift client", func() {
	var (
		redshiftClient warehouse.RedshiftClient
		spec           warehouse.ClusterSpec
	)

	BeforeEach(func() {
		var err error
		redshiftClient, err = awsClients.NewRedshiftClient(Region, AwsIamArn)
		Expect(err).NotTo(HaveOccurred())

		spec = warehouse.ClusterSpec{
			ClusterType:       key.ClusterTypeMultiNode,
			NodeType:          "dc2.large",
			NumberOfNodes:     2,
			DBName:            "dev",
			ClusterIdentifier: tests.GenerateGUID("wh"),
			MasterUsername:    "awsuser",
			MasterPassword:    "Passw0rd1",
			Port:              5439,
		}
	})

	AfterEach(func() {
		Expect(redshiftClient.DeleteCluster(ctx, spec.ClusterIdentifier)).To(Succeed())
	})

	It("creates a cluster that becomes available", func() {
		statusCode, err := redshiftClient.CreateCluster(ctx, spec, "arn:aws:iam::000000000000:role/dwh-role")
		Expect(err).NotTo(HaveOccurred())
		Expect(warehouse.ClusterAccepted(statusCode)).To(BeTrue())

		cluster, err := warehouse.WaitForAvailable(ctx, redshiftClient, spec.ClusterIdentifier, warehouse.WaitOptions{
			Interval:    100 * time.Millisecond,
			MaxInterval: time.Second,
			Timeout:     time.Minute,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(cluster.Identifier).To(Equal(spec.ClusterIdentifier))
		Expect(cluster.NumberOfNodes).To(Equal(2))
		Expect(cluster.EndpointAddress).NotTo(BeEmpty())

		By("creating it again it returns a cluster already exists error", func() {
			_, err = redshiftClient.CreateCluster(ctx, spec, "arn:aws:iam::000000000000:role/dwh-role")
			Expect(err).To(MatchError(&warehouse.ClusterAlreadyExistsError{}))
		})
	})

	When("the cluster doesn't exist", func() {
		It("returns a cluster not found error", func() {
			_, err := redshiftClient.DescribeCluster(ctx, "does-not-exist")
			Expect(err).To(MatchError(&warehouse.ClusterNotFoundError{}))
		})
	})
})
