package aws_test

import (
	"net/http"
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"

	"github.com/redshift-provisioner/pkg/key"
	"github.com/redshift-provisioner/pkg/warehouse"
)

const (
	createClusterResponse = `<CreateClusterResponse xmlns="http://redshift.amazonaws.com/doc/2012-12-01/">
  <CreateClusterResult>
    <Cluster>
      <ClusterIdentifier>wh-1</ClusterIdentifier>
      <NodeType>dc2.large</NodeType>
      <ClusterStatus>creating</ClusterStatus>
      <MasterUsername>dwhuser</MasterUsername>
      <DBName>dwh</DBName>
      <NumberOfNodes>4</NumberOfNodes>
    </Cluster>
  </CreateClusterResult>
  <ResponseMetadata><RequestId>e69b1294-64ef-11e2-b07c-f7fbdd006c67</RequestId></ResponseMetadata>
</CreateClusterResponse>`
	describeClustersResponse = `<DescribeClustersResponse xmlns="http://redshift.amazonaws.com/doc/2012-12-01/">
  <DescribeClustersResult>
    <Clusters>
      <Cluster>
        <ClusterIdentifier>wh-1</ClusterIdentifier>
        <NodeType>dc2.large</NodeType>
        <ClusterStatus>Available</ClusterStatus>
        <MasterUsername>dwhuser</MasterUsername>
        <DBName>dwh</DBName>
        <Endpoint>
          <Address>wh-1.abc123xyz.us-east-1.redshift.amazonaws.com</Address>
          <Port>5439</Port>
        </Endpoint>
        <NumberOfNodes>4</NumberOfNodes>
        <VpcId>vpc-0a1b2c3d</VpcId>
        <IamRoles>
          <ClusterIamRole>
            <IamRoleArn>arn:aws:iam::123456789012:role/dwhRole</IamRoleArn>
            <ApplyStatus>in-sync</ApplyStatus>
          </ClusterIamRole>
        </IamRoles>
      </Cluster>
    </Clusters>
  </DescribeClustersResult>
  <ResponseMetadata><RequestId>837d45d6-64f0-11e2-b07c-f7fbdd006c67</RequestId></ResponseMetadata>
</DescribeClustersResponse>`
	deleteClusterResponse = `<DeleteClusterResponse xmlns="http://redshift.amazonaws.com/doc/2012-12-01/">
  <DeleteClusterResult>
    <Cluster>
      <ClusterIdentifier>wh-1</ClusterIdentifier>
      <ClusterStatus>deleting</ClusterStatus>
    </Cluster>
  </DeleteClusterResult>
  <ResponseMetadata><RequestId>f2e6b87e-6503-11e2-b343-393adc3f0a21</RequestId></ResponseMetadata>
</DeleteClusterResponse>`
)

var _ = Describe("Redshift", func() {
	var (
		server         *ghttp.Server
		redshiftClient warehouse.RedshiftClient
		spec           warehouse.ClusterSpec
	)

	BeforeEach(func() {
		server = ghttp.NewServer()

		var err error
		redshiftClient, err = newClients(server).NewRedshiftClient(Region, "")
		Expect(err).NotTo(HaveOccurred())

		spec = warehouse.ClusterSpec{
			ClusterType:       key.ClusterTypeMultiNode,
			NodeType:          "dc2.large",
			NumberOfNodes:     4,
			DBName:            "dwh",
			ClusterIdentifier: "wh-1",
			MasterUsername:    "dwhuser",
			MasterPassword:    "Passw0rd",
			Port:              5439,
			RoleName:          "dwhRole",
		}
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("CreateCluster", func() {
		It("sends the cluster parameters and returns the status code", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, "/"),
				ghttp.VerifyForm(url.Values{
					"Action":                []string{"CreateCluster"},
					"ClusterIdentifier":     []string{"wh-1"},
					"ClusterType":           []string{"multi-node"},
					"NodeType":              []string{"dc2.large"},
					"NumberOfNodes":         []string{"4"},
					"DBName":                []string{"dwh"},
					"MasterUsername":        []string{"dwhuser"},
					"MasterUserPassword":    []string{"Passw0rd"},
					"Port":                  []string{"5439"},
					"IamRoles.IamRoleArn.1": []string{RoleARN},
				}),
				ghttp.RespondWith(http.StatusOK, createClusterResponse, xmlHeader),
			))

			statusCode, err := redshiftClient.CreateCluster(ctx, spec, RoleARN)
			Expect(err).NotTo(HaveOccurred())
			Expect(statusCode).To(Equal(http.StatusOK))
			Expect(warehouse.ClusterAccepted(statusCode)).To(BeTrue())
		})

		When("the cluster is single-node", func() {
			BeforeEach(func() {
				spec.ClusterType = key.ClusterTypeSingleNode
				spec.NumberOfNodes = 1
			})

			It("does not send the node count", func() {
				server.AppendHandlers(ghttp.CombineHandlers(
					ghttp.VerifyForm(url.Values{
						"Action":      []string{"CreateCluster"},
						"ClusterType": []string{"single-node"},
					}),
					func(w http.ResponseWriter, r *http.Request) {
						Expect(r.Form).NotTo(HaveKey("NumberOfNodes"))
					},
					ghttp.RespondWith(http.StatusOK, createClusterResponse, xmlHeader),
				))

				_, err := redshiftClient.CreateCluster(ctx, spec, RoleARN)
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("the cluster already exists", func() {
			It("returns a ClusterAlreadyExistsError", func() {
				server.AppendHandlers(ghttp.RespondWith(http.StatusBadRequest,
					queryError("ClusterAlreadyExists", "Cluster already exists"), xmlHeader))

				statusCode, err := redshiftClient.CreateCluster(ctx, spec, RoleARN)
				Expect(err).To(MatchError(&warehouse.ClusterAlreadyExistsError{}))
				Expect(statusCode).To(Equal(http.StatusBadRequest))
			})
		})

		When("the request is rejected", func() {
			It("returns the error and the status code", func() {
				server.AppendHandlers(ghttp.RespondWith(http.StatusBadRequest,
					queryError("InvalidParameterValue", "The parameter MasterUserPassword is not a valid password."), xmlHeader))

				statusCode, err := redshiftClient.CreateCluster(ctx, spec, RoleARN)
				Expect(err).To(MatchError(ContainSubstring("InvalidParameterValue")))
				Expect(statusCode).To(Equal(http.StatusBadRequest))
				Expect(warehouse.ClusterAccepted(statusCode)).To(BeFalse())
			})
		})
	})

	Describe("DescribeCluster", func() {
		It("returns the cluster descriptor", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyForm(url.Values{
					"Action":            []string{"DescribeClusters"},
					"ClusterIdentifier": []string{"wh-1"},
				}),
				ghttp.RespondWith(http.StatusOK, describeClustersResponse, xmlHeader),
			))

			cluster, err := redshiftClient.DescribeCluster(ctx, "wh-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(cluster).To(Equal(warehouse.Cluster{
				Identifier:      "wh-1",
				NodeType:        "dc2.large",
				Status:          "Available",
				MasterUsername:  "dwhuser",
				DBName:          "dwh",
				EndpointAddress: "wh-1.abc123xyz.us-east-1.redshift.amazonaws.com",
				EndpointPort:    5439,
				NumberOfNodes:   4,
				VPCId:           "vpc-0a1b2c3d",
				IAMRoleARNs:     []string{RoleARN},
			}))
		})

		When("the cluster does not exist", func() {
			It("returns a ClusterNotFoundError", func() {
				server.AppendHandlers(ghttp.RespondWith(http.StatusNotFound,
					queryError("ClusterNotFound", "Cluster wh-1 not found."), xmlHeader))

				_, err := redshiftClient.DescribeCluster(ctx, "wh-1")
				Expect(err).To(MatchError(&warehouse.ClusterNotFoundError{}))
			})
		})
	})

	Describe("DeleteCluster", func() {
		It("skips the final snapshot", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyForm(url.Values{
					"Action":                   []string{"DeleteCluster"},
					"ClusterIdentifier":        []string{"wh-1"},
					"SkipFinalClusterSnapshot": []string{"true"},
				}),
				ghttp.RespondWith(http.StatusOK, deleteClusterResponse, xmlHeader),
			))

			err := redshiftClient.DeleteCluster(ctx, "wh-1")
			Expect(err).NotTo(HaveOccurred())
		})

		When("the cluster does not exist", func() {
			It("does not return an error", func() {
				server.AppendHandlers(ghttp.RespondWith(http.StatusNotFound,
					queryError("ClusterNotFound", "Cluster wh-1 not found."), xmlHeader))

				err := redshiftClient.DeleteCluster(ctx, "wh-1")
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})
})
