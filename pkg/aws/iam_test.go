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
	createRoleResponse = `<CreateRoleResponse xmlns="https://iam.amazonaws.com/doc/2010-05-08/">
  <CreateRoleResult>
    <Role>
      <Path>/</Path>
      <RoleName>dwhRole</RoleName>
      <RoleId>AROAEXAMPLEROLEID</RoleId>
      <Arn>arn:aws:iam::123456789012:role/dwhRole</Arn>
      <CreateDate>2024-01-01T00:00:00Z</CreateDate>
    </Role>
  </CreateRoleResult>
  <ResponseMetadata><RequestId>4a93ceee-9966-11e1-b624-b1aEXAMPLE7c</RequestId></ResponseMetadata>
</CreateRoleResponse>`
	getRoleResponse = `<GetRoleResponse xmlns="https://iam.amazonaws.com/doc/2010-05-08/">
  <GetRoleResult>
    <Role>
      <Path>/</Path>
      <RoleName>dwhRole</RoleName>
      <RoleId>AROAEXAMPLEROLEID</RoleId>
      <Arn>arn:aws:iam::123456789012:role/dwhRole</Arn>
      <CreateDate>2024-01-01T00:00:00Z</CreateDate>
    </Role>
  </GetRoleResult>
  <ResponseMetadata><RequestId>df37e965-9967-11e1-a4c3-270EXAMPLE04</RequestId></ResponseMetadata>
</GetRoleResponse>`
	attachRolePolicyResponse = `<AttachRolePolicyResponse xmlns="https://iam.amazonaws.com/doc/2010-05-08/">
  <ResponseMetadata><RequestId>37a87673-3e07-11e4-b397-6b0bEXAMPLE</RequestId></ResponseMetadata>
</AttachRolePolicyResponse>`
	deleteRoleResponse = `<DeleteRoleResponse xmlns="https://iam.amazonaws.com/doc/2010-05-08/">
  <ResponseMetadata><RequestId>913e3f37-99ed-11e1-a4c3-270EXAMPLE04</RequestId></ResponseMetadata>
</DeleteRoleResponse>`
)

var _ = Describe("IAM", func() {
	var (
		server    *ghttp.Server
		iamClient warehouse.IAMClient
	)

	BeforeEach(func() {
		server = ghttp.NewServer()

		var err error
		iamClient, err = newClients(server).NewIAMClient(Region, "")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("CreateRole", func() {
		It("creates the role with the Redshift trust policy", func() {
			policyDocument, err := key.AssumeRolePolicyDocument()
			Expect(err).NotTo(HaveOccurred())

			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, "/"),
				ghttp.VerifyForm(url.Values{
					"Action":                   []string{"CreateRole"},
					"RoleName":                 []string{"dwhRole"},
					"Path":                     []string{key.RolePath},
					"Description":              []string{key.RoleDescription},
					"AssumeRolePolicyDocument": []string{policyDocument},
				}),
				func(w http.ResponseWriter, r *http.Request) {
					Expect(r.Header.Get("User-Agent")).To(ContainSubstring(key.AppName))
				},
				ghttp.RespondWith(http.StatusOK, createRoleResponse, xmlHeader),
			))

			err = iamClient.CreateRole(ctx, "dwhRole")
			Expect(err).NotTo(HaveOccurred())
			Expect(server.ReceivedRequests()).To(HaveLen(1))
		})

		When("the role already exists", func() {
			It("returns a RoleAlreadyExistsError", func() {
				server.AppendHandlers(ghttp.RespondWith(http.StatusConflict,
					queryError("EntityAlreadyExists", "Role with name dwhRole already exists."), xmlHeader))

				err := iamClient.CreateRole(ctx, "dwhRole")
				Expect(err).To(MatchError(&warehouse.RoleAlreadyExistsError{}))
				Expect(err).To(MatchError(ContainSubstring("dwhRole")))
			})
		})

		When("the caller is not allowed to create roles", func() {
			It("returns the error", func() {
				server.AppendHandlers(ghttp.RespondWith(http.StatusForbidden,
					queryError("AccessDenied", "User is not authorized to perform: iam:CreateRole"), xmlHeader))

				err := iamClient.CreateRole(ctx, "dwhRole")
				Expect(err).To(HaveOccurred())
				Expect(err).NotTo(MatchError(&warehouse.RoleAlreadyExistsError{}))
			})
		})
	})

	Describe("AttachRolePolicy", func() {
		It("attaches the policy", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyForm(url.Values{
					"Action":    []string{"AttachRolePolicy"},
					"RoleName":  []string{"dwhRole"},
					"PolicyArn": []string{key.S3ReadOnlyPolicyARN},
				}),
				ghttp.RespondWith(http.StatusOK, attachRolePolicyResponse, xmlHeader),
			))

			err := iamClient.AttachRolePolicy(ctx, "dwhRole", key.S3ReadOnlyPolicyARN)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("GetRoleARN", func() {
		It("returns the ARN of the role", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyForm(url.Values{
					"Action":   []string{"GetRole"},
					"RoleName": []string{"dwhRole"},
				}),
				ghttp.RespondWith(http.StatusOK, getRoleResponse, xmlHeader),
			))

			arn, err := iamClient.GetRoleARN(ctx, "dwhRole")
			Expect(err).NotTo(HaveOccurred())
			Expect(arn).To(Equal(RoleARN))
		})
	})

	Describe("DetachRolePolicy", func() {
		When("the role does not exist anymore", func() {
			It("does not return an error", func() {
				server.AppendHandlers(ghttp.RespondWith(http.StatusNotFound,
					queryError("NoSuchEntity", "The role with name dwhRole cannot be found."), xmlHeader))

				err := iamClient.DetachRolePolicy(ctx, "dwhRole", key.S3ReadOnlyPolicyARN)
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})

	Describe("DeleteRole", func() {
		It("deletes the role", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyForm(url.Values{
					"Action":   []string{"DeleteRole"},
					"RoleName": []string{"dwhRole"},
				}),
				ghttp.RespondWith(http.StatusOK, deleteRoleResponse, xmlHeader),
			))

			err := iamClient.DeleteRole(ctx, "dwhRole")
			Expect(err).NotTo(HaveOccurred())
		})

		When("the role does not exist", func() {
			It("does not return an error", func() {
				server.AppendHandlers(ghttp.RespondWith(http.StatusNotFound,
					queryError("NoSuchEntity", "The role with name dwhRole cannot be found."), xmlHeader))

				err := iamClient.DeleteRole(ctx, "dwhRole")
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})
})
