package testutil

import (
	"os"
	"path/filepath"
)

// SeedContent writes the default content fixture into root: site metadata,
// the category manifest and documents in both categories. The slugs match
// the homepage feature links so link-following tests resolve.
func SeedContent(root string) error {
	files := map[string]string{
		"site.yaml": `title: AKS Labs
tagline: Hands-on tutorials for Azure Kubernetes Service
url: http://localhost:3000
`,
		"categories.yaml": `categories:
  - id: getting-started
    name: Getting Started
    description: Set up your cluster and tooling.
    icon: aks
    position: 1
  - id: aks
    name: AKS Tutorials
    description: Operational guides for running workloads on AKS.
    icon: aks
    position: 2
`,
		"docs/getting-started/intro.md": `---
id: intro
title: Introduction
category: getting-started
description: What these labs cover and what you need before starting.
lastUpdated: "2025-01-15"
position: 1
---

## Welcome

These labs walk through running real workloads on Azure Kubernetes Service.

## Prerequisites

- An Azure subscription
- ` + "`kubectl`" + ` and the Azure CLI installed
`,
		"docs/aks/aks-workload-identities.md": `---
id: aks-workload-identities
title: Workload Identities in AKS
category: aks
tags:
  - security
  - identity
description: Give pods passwordless access to Azure resources with federated credentials.
lastUpdated: "2025-02-10"
position: 1
related:
  - aks-scaling
---

## Why workload identity

Pods exchange their service account token for an Azure AD token, so no
secret ever lands in the cluster.

## Enable the webhook

` + "```bash" + `
az aks update --enable-oidc-issuer --enable-workload-identity
` + "```" + `

Continue with [scaling](/docs/aks/aks-scaling) once identities work.
`,
		"docs/aks/aks-scaling.md": `---
id: aks-scaling
title: Scaling in AKS
category: aks
tags:
  - keda
  - autoscaling
description: Scale nodes with the Cluster Autoscaler and workloads with KEDA.
lastUpdated: "2025-03-01"
position: 2
related:
  - aks-workload-identities
---

## Cluster Autoscaler

The autoscaler grows the node pool when pods are unschedulable.

## KEDA

KEDA scales deployments on external metrics, down to zero when idle.

| Component | Scales |
| --- | --- |
| Cluster Autoscaler | Nodes |
| KEDA | Pods |
`,
	}

	for rel, body := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return err
		}
	}
	return nil
}
