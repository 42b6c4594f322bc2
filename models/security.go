package models

type SecurityGroup struct {
	GroupID     string
	GroupName   string
	Region      string
	VPCID       string
	Permissions []IPPermission
}

// IPPermission is an inbound rule. FromPort/ToPort are nil for protocols
// without ports.
type IPPermission struct {
	Protocol  string
	FromPort  *int32
	ToPort    *int32
	IPRanges  []string
	IPv6Range []string
}
