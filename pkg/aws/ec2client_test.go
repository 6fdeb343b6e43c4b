package aws_test

import (
	"net/http"
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"

	"github.com/redshift-provisioner/pkg/warehouse"
)

const (
	describeSecurityGroupsResponse = `<DescribeSecurityGroupsResponse xmlns="http://ec2.amazonaws.com/doc/2016-11-15/">
  <requestId>59dbff89-35bd-4eac-99ed-be587EXAMPLE</requestId>
  <securityGroupInfo>
    <item>
      <ownerId>123456789012</ownerId>
      <groupId>sg-0aaaaaaaaaaaaaaaa</groupId>
      <groupName>redshift-extra</groupName>
      <groupDescription>extra group</groupDescription>
      <vpcId>vpc-0a1b2c3d</vpcId>
    </item>
    <item>
      <ownerId>123456789012</ownerId>
      <groupId>sg-0123456789</groupId>
      <groupName>default</groupName>
      <groupDescription>default VPC security group</groupDescription>
      <vpcId>vpc-0a1b2c3d</vpcId>
    </item>
  </securityGroupInfo>
</DescribeSecurityGroupsResponse>`
	emptySecurityGroupsResponse = `<DescribeSecurityGroupsResponse xmlns="http://ec2.amazonaws.com/doc/2016-11-15/">
  <requestId>59dbff89-35bd-4eac-99ed-be587EXAMPLE</requestId>
  <securityGroupInfo/>
</DescribeSecurityGroupsResponse>`
	authorizeIngressResponse = `<AuthorizeSecurityGroupIngressResponse xmlns="http://ec2.amazonaws.com/doc/2016-11-15/">
  <requestId>59dbff89-35bd-4eac-99ed-be587EXAMPLE</requestId>
  <return>true</return>
</AuthorizeSecurityGroupIngressResponse>`
	revokeIngressResponse = `<RevokeSecurityGroupIngressResponse xmlns="http://ec2.amazonaws.com/doc/2016-11-15/">
  <requestId>59dbff89-35bd-4eac-99ed-be587EXAMPLE</requestId>
  <return>true</return>
</RevokeSecurityGroupIngressResponse>`
)

var _ = Describe("EC2", func() {
	var (
		server    *ghttp.Server
		ec2Client warehouse.EC2Client
	)

	BeforeEach(func() {
		server = ghttp.NewServer()

		var err error
		ec2Client, err = newClients(server).NewEC2Client(Region, "")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("AuthorizeClusterIngress", func() {
		It("opens the port on the group named default", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyForm(url.Values{
						"Action":           []string{"DescribeSecurityGroups"},
						"Filter.1.Name":    []string{"vpc-id"},
						"Filter.1.Value.1": []string{"vpc-0a1b2c3d"},
						"Filter.2.Name":    []string{"group-name"},
						"Filter.2.Value.1": []string{"default"},
					}),
					ghttp.RespondWith(http.StatusOK, describeSecurityGroupsResponse, xmlHeader),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyForm(url.Values{
						"Action":     []string{"AuthorizeSecurityGroupIngress"},
						"GroupId":    []string{"sg-0123456789"},
						"IpProtocol": []string{"tcp"},
						"CidrIp":     []string{"0.0.0.0/0"},
						"FromPort":   []string{"5439"},
						"ToPort":     []string{"5439"},
					}),
					ghttp.RespondWith(http.StatusOK, authorizeIngressResponse, xmlHeader),
				),
			)

			securityGroupId, err := ec2Client.AuthorizeClusterIngress(ctx, "vpc-0a1b2c3d", 5439)
			Expect(err).NotTo(HaveOccurred())
			Expect(securityGroupId).To(Equal("sg-0123456789"))
		})

		When("the rule already exists", func() {
			It("does not return an error", func() {
				server.AppendHandlers(
					ghttp.RespondWith(http.StatusOK, describeSecurityGroupsResponse, xmlHeader),
					ghttp.RespondWith(http.StatusBadRequest,
						ec2Error("InvalidPermission.Duplicate", "the specified rule already exists"), xmlHeader),
				)

				securityGroupId, err := ec2Client.AuthorizeClusterIngress(ctx, "vpc-0a1b2c3d", 5439)
				Expect(err).NotTo(HaveOccurred())
				Expect(securityGroupId).To(Equal("sg-0123456789"))
			})
		})

		When("the caller is not allowed to change the group", func() {
			It("returns the error", func() {
				server.AppendHandlers(
					ghttp.RespondWith(http.StatusOK, describeSecurityGroupsResponse, xmlHeader),
					ghttp.RespondWith(http.StatusForbidden,
						ec2Error("UnauthorizedOperation", "You are not authorized to perform this operation."), xmlHeader),
				)

				_, err := ec2Client.AuthorizeClusterIngress(ctx, "vpc-0a1b2c3d", 5439)
				Expect(err).To(MatchError(ContainSubstring("UnauthorizedOperation")))
			})
		})

		When("the VPC has no default security group", func() {
			It("returns a SecurityGroupNotFoundError", func() {
				server.AppendHandlers(ghttp.RespondWith(http.StatusOK, emptySecurityGroupsResponse, xmlHeader))

				_, err := ec2Client.AuthorizeClusterIngress(ctx, "vpc-0a1b2c3d", 5439)
				Expect(err).To(MatchError(&warehouse.SecurityGroupNotFoundError{}))
				Expect(server.ReceivedRequests()).To(HaveLen(1))
			})
		})
	})

	Describe("RevokeClusterIngress", func() {
		It("revokes the rule", func() {
			server.AppendHandlers(
				ghttp.RespondWith(http.StatusOK, describeSecurityGroupsResponse, xmlHeader),
				ghttp.CombineHandlers(
					ghttp.VerifyForm(url.Values{
						"Action":   []string{"RevokeSecurityGroupIngress"},
						"GroupId":  []string{"sg-0123456789"},
						"FromPort": []string{"5439"},
					}),
					ghttp.RespondWith(http.StatusOK, revokeIngressResponse, xmlHeader),
				),
			)

			err := ec2Client.RevokeClusterIngress(ctx, "vpc-0a1b2c3d", 5439)
			Expect(err).NotTo(HaveOccurred())
		})

		When("the rule does not exist", func() {
			It("does not return an error", func() {
				server.AppendHandlers(
					ghttp.RespondWith(http.StatusOK, describeSecurityGroupsResponse, xmlHeader),
					ghttp.RespondWith(http.StatusBadRequest,
						ec2Error("InvalidPermission.NotFound", "The specified rule does not exist in this security group."), xmlHeader),
				)

				err := ec2Client.RevokeClusterIngress(ctx, "vpc-0a1b2c3d", 5439)
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("the security group does not exist", func() {
			It("does not return an error", func() {
				server.AppendHandlers(ghttp.RespondWith(http.StatusOK, emptySecurityGroupsResponse, xmlHeader))

				err := ec2Client.RevokeClusterIngress(ctx, "vpc-0a1b2c3d", 5439)
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})
})
