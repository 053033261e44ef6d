package infrastructure

import (
	"github.com/imamik/osadmin/internal/provisioning"
)

// Step names, in run order.
const (
	StepResolveProject = "resolve-project"
	StepCreateNetwork  = "create-network"
	StepCreateSubnet   = "create-subnet"
	StepCreateRouter   = "create-router"
	StepAttachSubnet   = "attach-subnet"
)

// Fixed names of the resources created for every project.
const (
	NetworkName = "private"
	SubnetName  = "private"
	RouterName  = "router"
)

// Resource kinds recorded in the ledger.
const (
	KindNetwork         = "network"
	KindSubnet          = "subnet"
	KindRouter          = "router"
	KindRouterInterface = "router-interface"
)

// Provisioner builds the private network topology of a project.
type Provisioner struct{}

// NewProvisioner creates a new network provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name returns the workflow name.
func (p *Provisioner) Name() string {
	return "init-network"
}

// Steps returns the workflow steps in order. Each step reads the ids left in
// ctx.State by the steps before it.
func (p *Provisioner) Steps() []provisioning.Step {
	return []provisioning.Step{
		provisioning.StepFunc{StepName: StepResolveProject, Fn: p.ResolveProject},
		provisioning.StepFunc{StepName: StepCreateNetwork, Fn: p.CreateNetwork},
		provisioning.StepFunc{StepName: StepCreateSubnet, Fn: p.CreateSubnet},
		provisioning.StepFunc{StepName: StepCreateRouter, Fn: p.CreateRouter},
		provisioning.StepFunc{StepName: StepAttachSubnet, Fn: p.AttachSubnet},
	}
}

// Provision runs all steps against ctx.
func (p *Provisioner) Provision(ctx *provisioning.Context, listeners ...provisioning.StepListener) error {
	return provisioning.RunSteps(ctx, p.Steps(), listeners...)
}

// StepNames returns the names of Steps in order.
func (p *Provisioner) StepNames() []string {
	steps := p.Steps()
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name()
	}
	return names
}
