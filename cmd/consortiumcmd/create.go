// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package consortiumcmd

import (
	"context"
	"errors"

	"github.com/luxfi/deployer/pkg/azure"
	"github.com/luxfi/deployer/pkg/prompts"
	"github.com/luxfi/deployer/pkg/ux"
	"github.com/luxfi/deployer/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	promptResourceGroup      = "Enter name for new resource group"
	promptConsortiumName     = "Enter name for the consortium"
	promptMemberName         = "Enter name for your member"
	promptMemberPassword     = "Enter member password"
	promptManagementPassword = "Enter consortium management password"
)

var (
	resourceGroup      string
	consortiumName     string
	memberName         string
	memberPassword     string
	managementPassword string
)

// deployer consortium create
func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a consortium member on Azure Blockchain Service",
		Long: `The consortium create command creates a new resource group and a blockchain
member joining the named consortium, then registers the consortium so contracts
can be deployed to it.

Names are checked against Azure while you type. Passwords must hold upper and
lower case letters, a digit and a special character.`,
		Args: cobra.NoArgs,
		RunE: createConsortium,
	}
	cmd.Flags().StringVar(&resourceGroup, "resource-group", "", "name of the resource group to create")
	cmd.Flags().StringVar(&consortiumName, "consortium", "", "consortium name")
	cmd.Flags().StringVar(&memberName, "member", "", "blockchain member name")
	cmd.Flags().StringVar(&memberPassword, "password", "", "blockchain member password")
	cmd.Flags().StringVar(&managementPassword, "management-password", "", "consortium management password")
	return cmd
}

func createConsortium(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	client, err := app.AzureClient(ctx)
	if err != nil {
		return err
	}
	engine := app.ValidationEngine()

	passwordCheck := func(s string) error {
		return message(engine.ValidateAccessPassword(s))
	}

	fields := []struct {
		value  *string
		opt    prompts.MissingOpt
		name   *validation.Field
		secret bool
	}{
		{
			value: &resourceGroup,
			opt:   prompts.MissingOpt{Flag: "--resource-group", Prompt: promptResourceGroup},
			name:  engine.ResourceGroupField(ctx, validation.ExistsFunc(client.ResourceGroupExists)),
		},
		{
			value: &consortiumName,
			opt:   prompts.MissingOpt{Flag: "--consortium", Prompt: promptConsortiumName},
			name:  engine.ConsortiumField(ctx, client.ConsortiumNameAvailable),
		},
		{
			value: &memberName,
			opt:   prompts.MissingOpt{Flag: "--member", Prompt: promptMemberName},
			name:  engine.MemberField(ctx, client.MemberNameAvailable),
		},
		{
			value:  &memberPassword,
			opt:    prompts.MissingOpt{Flag: "--password", Prompt: promptMemberPassword, Validate: passwordCheck},
			secret: true,
		},
		{
			value:  &managementPassword,
			opt:    prompts.MissingOpt{Flag: "--management-password", Prompt: promptManagementPassword, Validate: passwordCheck},
			secret: true,
		},
	}

	req := prompts.NewRequirements("deployer consortium create")
	for _, f := range fields {
		req.Require(f.value, f.opt)
	}
	if req.HasMissing() && !prompts.IsInteractive() {
		return req.Resolve(app.Prompt)
	}

	for _, f := range fields {
		var v string
		switch {
		case *f.value != "" && f.name != nil:
			err = submitName(f.name, *f.value)
			v = *f.value
		case *f.value != "":
			err = f.opt.Validate(*f.value)
			v = *f.value
		case f.secret:
			v, err = app.Prompt.CapturePassword(f.opt.Prompt, f.opt.Validate)
		default:
			v, err = captureName(app.Prompt, f.opt.Prompt, f.name)
		}
		if errors.Is(err, prompts.ErrCancelled) {
			ux.Logger.PrintToUser("Consortium creation cancelled")
			return nil
		}
		if err != nil {
			return err
		}
		*f.value = v
	}

	return create(ctx, client)
}

func create(ctx context.Context, client *azure.Client) error {
	steps := ux.NewStepTracker(ux.Logger)

	steps.Start("Create resource group " + resourceGroup)
	spinner := ux.StartSpinner("Creating resource group " + resourceGroup)
	err := client.CreateResourceGroup(ctx, resourceGroup)
	spinner.Stop()
	if err != nil {
		steps.Failed(err.Error())
		return err
	}
	steps.Complete("")

	steps.Start("Create blockchain member " + memberName)
	spinner = ux.StartSpinner("Creating blockchain member " + memberName)
	consortium, err := client.CreateMember(ctx, azure.MemberSpec{
		ResourceGroup:      resourceGroup,
		Consortium:         consortiumName,
		MemberName:         memberName,
		Password:           memberPassword,
		ManagementPassword: managementPassword,
	})
	spinner.Stop()
	if err != nil {
		steps.Failed(err.Error())
		return err
	}
	steps.Complete(consortium.URL())

	store := app.NetworkTree()
	tree, err := store.Load()
	if err != nil {
		return err
	}
	if err := tree.ManagedNetwork().AddChild(consortium); err != nil {
		return err
	}
	if err := store.Save(tree); err != nil {
		return err
	}
	app.Log.Info("consortium registered", zap.String("consortium", consortium.Name()), zap.String("url", consortium.URL()))
	ux.Logger.GreenCheckmarkToUser("Consortium %s is ready at %s", consortium.Name(), consortium.URL())
	return nil
}

// captureName prompts until the submitted name is free. While typing only
// the format is checked and the availability lookup is scheduled; the lookup
// for the submitted value is awaited before it is accepted.
func captureName(prompt prompts.Prompter, label string, field *validation.Field) (string, error) {
	for {
		name, err := prompt.CaptureValidatedString(label, field.Check)
		if err != nil {
			return "", err
		}
		msg, err := field.Validate(name)
		if err != nil {
			app.Log.Debug("name lookup failed", zap.String("name", name), zap.Error(err))
			return "", err
		}
		if msg == "" {
			return name, nil
		}
		ux.Logger.RedXToUser("%s", msg)
	}
}

func submitName(field *validation.Field, name string) error {
	msg, err := field.Validate(name)
	if err != nil {
		return err
	}
	return message(msg)
}

func message(msg string) error {
	if msg == "" {
		return nil
	}
	return errors.New(msg)
}
