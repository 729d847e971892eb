package main

import (
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssecretsmanager"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

const defaultSecretName = "bst/jwt-secret"

type BstStackProps struct {
	awscdk.StackProps
	// SecretName names an existing Secrets Manager secret holding the token
	// signing key. Only the name ends up in the template.
	SecretName string
}

func NewBstStack(scope constructs.Construct, id string, props *BstStackProps) awscdk.Stack {
	var sprops awscdk.StackProps
	secretName := defaultSecretName
	if props != nil {
		sprops = props.StackProps
		if props.SecretName != "" {
			secretName = props.SecretName
		}
	}
	stack := awscdk.NewStack(scope, &id, &sprops)

	secret := awssecretsmanager.Secret_FromSecretNameV2(stack, jsii.String("bstJwtSecret"), jsii.String(secretName))

	// A single concurrent instance keeps one tree for every request.
	lambda := awslambda.NewFunction(stack, jsii.String("bstFunction"), &awslambda.FunctionProps{
		Runtime:                      awslambda.Runtime_PROVIDED_AL2023(),
		Handler:                      jsii.String("bootstrap"),
		Code:                         awslambda.AssetCode_FromAsset(jsii.String("cmd/bstlambda/function.zip"), nil),
		ReservedConcurrentExecutions: jsii.Number(1),
		Environment: &map[string]*string{
			"BST_JWT_SECRET_ID": secret.SecretName(),
		},
	})
	secret.GrantRead(lambda, nil)

	api := awsapigateway.NewRestApi(stack, jsii.String("bstApi"), &awsapigateway.RestApiProps{
		DefaultCorsPreflightOptions: &awsapigateway.CorsOptions{
			AllowHeaders: jsii.Strings("Content-Type", "Authorization"),
			AllowMethods: jsii.Strings("GET", "POST", "DELETE", "PUT", "OPTIONS"),
			AllowOrigins: jsii.Strings("*"),
		},
		DeployOptions: &awsapigateway.StageOptions{
			LoggingLevel: awsapigateway.MethodLoggingLevel_INFO,
		},
		CloudWatchRole: jsii.Bool(true),
	})

	integration := awsapigateway.NewLambdaIntegration(lambda, nil)

	v1 := api.Root().AddResource(jsii.String("v1"), nil)

	keyResource := v1.AddResource(jsii.String("key"), nil).AddResource(jsii.String("{key}"), nil)
	keyResource.AddMethod(jsii.String("GET"), integration, nil)
	keyResource.AddMethod(jsii.String("PUT"), integration, nil)
	keyResource.AddMethod(jsii.String("DELETE"), integration, nil)

	keysResource := v1.AddResource(jsii.String("keys"), nil)
	keysResource.AddMethod(jsii.String("POST"), integration, nil)

	traversalResource := v1.AddResource(jsii.String("traversal"), nil).AddResource(jsii.String("{order}"), nil)
	traversalResource.AddMethod(jsii.String("GET"), integration, nil)

	return stack
}

func main() {
	defer jsii.Close()

	app := awscdk.NewApp(nil)

	NewBstStack(app, "BstStack", &BstStackProps{
		StackProps: awscdk.StackProps{
			Env: env(),
		},
		SecretName: os.Getenv("BST_JWT_SECRET_NAME"),
	})

	app.Synth(nil)
}

func env() *awscdk.Environment {
	return nil
}
