package gitleaks

func (x *Client) DetectArgsForTest(src, reportPath string) []string {
	return x.detectArgs(src, reportPath)
}
