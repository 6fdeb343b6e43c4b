package aws_test

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"sigs.k8s.io/controller-runtime/pkg/metrics"

	"github.com/redshift-provisioner/pkg/aws"
	"github.com/redshift-provisioner/pkg/warehouse"
)

const (
	getCallerIdentityResponse = `<GetCallerIdentityResponse xmlns="https://sts.amazonaws.com/doc/2011-06-15/">
  <GetCallerIdentityResult>
    <Arn>arn:aws:iam::123456789012:user/admin</Arn>
    <UserId>AIDAEXAMPLEUSERID</UserId>
    <Account>123456789012</Account>
  </GetCallerIdentityResult>
  <ResponseMetadata><RequestId>01234567-89ab-cdef-0123-456789abcdef</RequestId></ResponseMetadata>
</GetCallerIdentityResponse>`
)

var _ = Describe("Clients", func() {
	var (
		server  *ghttp.Server
		clients *aws.Clients
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		clients = newClients(server)
	})

	AfterEach(func() {
		server.Close()
	})

	It("requires a region", func() {
		_, err := clients.NewRedshiftClient("", "")
		Expect(err).To(MatchError(ContainSubstring("region")))
	})

	It("records request metrics", func() {
		server.AppendHandlers(ghttp.RespondWith(http.StatusOK, getCallerIdentityResponse, xmlHeader))

		identityClient, err := clients.NewIdentityClient(Region, "")
		Expect(err).NotTo(HaveOccurred())
		_, err = identityClient.GetCallerIdentity(ctx)
		Expect(err).NotTo(HaveOccurred())

		families, err := metrics.Registry.Gather()
		Expect(err).NotTo(HaveOccurred())
		names := []string{}
		for _, family := range families {
			names = append(names, family.GetName())
		}
		Expect(names).To(ContainElement("aws_api_requests_total"))
	})

	It("labels failed requests with the API error code", func() {
		server.AppendHandlers(ghttp.RespondWith(http.StatusNotFound,
			queryError("ClusterNotFound", "Cluster wh-metrics not found."), xmlHeader))

		redshiftClient, err := clients.NewRedshiftClient(Region, "")
		Expect(err).NotTo(HaveOccurred())
		_, err = redshiftClient.DescribeCluster(ctx, "wh-metrics")
		Expect(err).To(MatchError(&warehouse.ClusterNotFoundError{}))

		Expect(requestLabels(metrics.Registry, "DescribeClusters")).To(ContainElement(SatisfyAll(
			HaveKeyWithValue("service", "Redshift"),
			HaveKeyWithValue("status_code", "404"),
			HaveKeyWithValue("error_code", "ClusterNotFound"),
		)))
	})

	Describe("STS", func() {
		It("returns the caller identity", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, "/"),
				ghttp.RespondWith(http.StatusOK, getCallerIdentityResponse, xmlHeader),
			))

			identityClient, err := clients.NewIdentityClient(Region, "")
			Expect(err).NotTo(HaveOccurred())

			identity, err := identityClient.GetCallerIdentity(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(identity).To(Equal(warehouse.Identity{
				Account: "123456789012",
				ARN:     "arn:aws:iam::123456789012:user/admin",
				UserID:  "AIDAEXAMPLEUSERID",
			}))
		})
	})

	Describe("S3", func() {
		var storageClient warehouse.StorageClient

		BeforeEach(func() {
			var err error
			storageClient, err = clients.NewStorageClient(Region, "")
			Expect(err).NotTo(HaveOccurred())
		})

		It("finds an existing bucket", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodHead, "/udacity-dend"),
				ghttp.RespondWith(http.StatusOK, nil),
			))

			exists, err := storageClient.BucketExists(ctx, "udacity-dend")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})

		It("reports a missing bucket", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusNotFound, nil))

			exists, err := storageClient.BucketExists(ctx, "udacity-dend")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})

	Describe("NewMeterProvider", func() {
		It("registers the SDK metrics exporter", func() {
			registry := prometheus.NewRegistry()

			meterProvider, shutdown, err := aws.NewMeterProvider(registry)
			Expect(err).NotTo(HaveOccurred())
			Expect(meterProvider).NotTo(BeNil())
			Expect(shutdown(ctx)).To(Succeed())
		})

		It("exposes the SDK client metrics of every call", func() {
			registry := prometheus.NewRegistry()
			meterProvider, shutdown, err := aws.NewMeterProvider(registry)
			Expect(err).NotTo(HaveOccurred())
			defer func() {
				Expect(shutdown(ctx)).To(Succeed())
			}()

			server.AppendHandlers(ghttp.RespondWith(http.StatusOK, getCallerIdentityResponse, xmlHeader))
			clients = aws.NewClients(server.URL(),
				aws.WithStaticCredentials("AKIDEXAMPLE", "wJalrXUtnFEMI/K7MDENG/bPxRfiCYEXAMPLEKEY"),
				aws.WithMeterProvider(meterProvider),
			)

			identityClient, err := clients.NewIdentityClient(Region, "")
			Expect(err).NotTo(HaveOccurred())
			_, err = identityClient.GetCallerIdentity(ctx)
			Expect(err).NotTo(HaveOccurred())

			families, err := registry.Gather()
			Expect(err).NotTo(HaveOccurred())
			names := []string{}
			for _, family := range families {
				names = append(names, family.GetName())
			}
			Expect(names).To(ContainElement(HavePrefix("client_call_duration")))
		})
	})
})

// requestLabels returns the label sets of the AWS request counter for one operation.
func requestLabels(gatherer prometheus.Gatherer, operation string) []map[string]string {
	families, err := gatherer.Gather()
	Expect(err).NotTo(HaveOccurred())

	result := []map[string]string{}
	for _, family := range families {
		if family.GetName() != "aws_api_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := labelMap(metric)
			if labels["operation"] == operation {
				result = append(result, labels)
			}
		}
	}

	return result
}

func labelMap(metric *dto.Metric) map[string]string {
	labels := map[string]string{}
	for _, pair := range metric.GetLabel() {
		labels[pair.GetName()] = pair.GetValue()
	}

	return labels
}
