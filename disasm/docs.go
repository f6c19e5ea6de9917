package disasm

type StepDoc struct {
	Short    string
	Long     string
	Formulae string
}

var StepDocs = map[string]StepDoc{
	"MUL": {Short: "Multiply and load",
		Long: "Multiplies the input (delay memory at the tap, or register RAD) with " +
			"the selected coefficient. The product is clamped to +-4 and loaded into WAI.",
		Formulae: "IN * C -> WAI",
	},
	"MAC": {Short: "Multiply and accumulate",
		Long: "Like MUL, but the clamped product is added to WAI. WAI is clamped " +
			"to +-8 afterwards.",
		Formulae: "WAI + IN * C -> WAI",
	},
	"MULW": {Short: "Multiply, load and write",
		Long: "MUL followed by a memory write of WAI. Values above 1.5 go through " +
			"a tanh limiter before damping is applied.",
		Formulae: "IN * C -> WAI -> MEM[TAP]",
	},
	"MACW": {Short: "Multiply, accumulate and write",
		Long:     "MAC followed by a memory write of WAI.",
		Formulae: "WAI + IN * C -> WAI -> MEM[TAP]",
	},
	"IO": {Short: "Injection / extraction node",
		Long: "Writes WAI to the delay memory. R2 holds the input sample; the R1 " +
			"variant marks the output step where R1 is captured.",
		Formulae: "WAI -> MEM[TAP]",
	},
	"WR": {Short: "Memory write",
		Long:     "Writes WAI to the delay memory without using the multiplier.",
		Formulae: "WAI -> MEM[TAP]",
	},
	"RD": {Short: "Tap read",
		Long:     "Loads the delay memory at the tap position into WAI.",
		Formulae: "MEM[TAP] -> WAI",
	},
	"IDLE": {Short: "No memory activity",
		Long:     "Control field is all ones and no coefficient is used.",
		Formulae: "No operation",
	},
	"NOP": {Short: "No-Operation",
		Long:     "All-ones control and coefficient bytes. Does nothing.",
		Formulae: "No operation",
	},
}
