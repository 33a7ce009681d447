package metadata_test

import (
	"fmt"

	"github.com/matzehuels/dove/pkg/manifest"
	"github.com/matzehuels/dove/pkg/metadata"
)

func ExamplePartition() {
	deps := []manifest.Dependence{
		manifest.Git{Git: "https://github.com/example/stdlib"},
		manifest.Path{Path: "../lib"},
		manifest.Git{Git: "https://github.com/example/coins"},
	}

	git, local := metadata.Partition(deps)
	for _, g := range git {
		fmt.Println("git:", g.Git)
	}
	fmt.Println("local:", local)
	// Output:
	// git: https://github.com/example/stdlib
	// git: https://github.com/example/coins
	// local: [../lib]
}

func ExampleEncode() {
	m := &manifest.Manifest{
		Package: manifest.Package{
			Name: manifest.String("demo"),
			Dependencies: []manifest.Dependence{
				manifest.Git{Git: "https://x/git"},
				manifest.Path{Path: "../lib"},
			},
		},
	}

	out, err := metadata.Encode(metadata.FromManifest(m))
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))
	// Output:
	// {
	//   "package": {
	//     "name": "demo",
	//     "account_address": null,
	//     "authors": [],
	//     "blockchain_api": null,
	//     "git_dependencies": [
	//       {
	//         "git": "https://x/git"
	//       }
	//     ],
	//     "local_dependencies": [
	//       "../lib"
	//     ]
	//   },
	//   "layout": {
	//     "modules_dir": "",
	//     "scripts_dir": "",
	//     "tests_dir": "",
	//     "modules_output": "",
	//     "bundles_output": "",
	//     "scripts_output": "",
	//     "transactions_output": "",
	//     "deps": "",
	//     "artifacts": "",
	//     "index": ""
	//   }
	// }
}
