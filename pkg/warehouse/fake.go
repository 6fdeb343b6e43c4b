package warehouse

type FakeClients struct {
	IAMClient      IAMClient
	RedshiftClient RedshiftClient
	EC2Client      EC2Client
	IdentityClient IdentityClient
	StorageClient  StorageClient
}

func (f *FakeClients) NewIAMClient(region, roleToAssume string) (IAMClient, error) {
	return f.IAMClient, nil
}

func (f *FakeClients) NewRedshiftClient(region, roleToAssume string) (RedshiftClient, error) {
	return f.RedshiftClient, nil
}

func (f *FakeClients) NewEC2Client(region, roleToAssume string) (EC2Client, error) {
	return f.EC2Client, nil
}

func (f *FakeClients) NewIdentityClient(region, roleToAssume string) (IdentityClient, error) {
	return f.IdentityClient, nil
}

func (f *FakeClients) NewStorageClient(region, roleToAssume string) (StorageClient, error) {
	return f.StorageClient, nil
}
