package render

import (
	"fmt"

	"github.com/aymerick/raymond"

	"github.com/pendergraft/seiconf/internal/hardhat"
)

// Plugins imported by the generated TypeScript config
var plugins = []string{
	"@nomicfoundation/hardhat-toolbox",
	"tsconfig-paths/register",
	"@nomicfoundation/hardhat-foundry",
}

const header = "// Generated by seiconf. Do not edit: values come from PRIVATE_KEY and SEITRACE_KEY.\n"

var jsTemplate = raymond.MustParse(header + `/** @type import('hardhat/config').HardhatUserConfig */
module.exports = {{{config}}};
`)

var tsTemplate = raymond.MustParse(header + `import { HardhatUserConfig } from "hardhat/config";
{{#each plugins}}import "{{{this}}}";
{{/each}}
const config: HardhatUserConfig = {{{config}}};

export default config;
`)

// Plugins returns the plugin imports of the TypeScript module
func Plugins() []string {
	out := make([]string, len(plugins))
	copy(out, plugins)
	return out
}

func renderModule(cfg *hardhat.UserConfig, f Format) (string, error) {
	data, err := marshalJSON(cfg)
	if err != nil {
		return "", err
	}

	ctx := map[string]interface{}{
		"config":  string(data),
		"plugins": plugins,
	}

	tpl := jsTemplate
	if f == TS {
		tpl = tsTemplate
	}

	out, err := tpl.Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("rendering %s module: %w", f, err)
	}
	return out, nil
}
