package features

// registry holds the homepage cards in display order. Editing this slice is
// the whole workflow for changing the homepage: no validation, no runtime
// mutation, what is declared here is what renders.
var registry = []FeatureItem{
	{
		Title: "Workload Identities in AKS",
		Icon:  "workload-identity",
		Description: "Federate Kubernetes service accounts with Microsoft Entra ID " +
			"and let pods call Azure APIs <em>without storing a single secret</em>.",
		LinkTo: "/docs/aks/aks-workload-identities",
	},
	{
		Title: "Scaling in AKS",
		Icon:  "autoscale",
		Description: "Grow the node pool with the Cluster Autoscaler and drive " +
			"workloads with <code>KEDA</code>, from zero to peak traffic and back.",
		LinkTo: "/docs/aks/aks-scaling",
	},
}

// Items returns the feature cards in declaration order. Callers get a copy;
// the registry itself never changes after init.
func Items() []FeatureItem {
	out := make([]FeatureItem, len(registry))
	copy(out, registry)
	return out
}
