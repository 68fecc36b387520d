package shop

import (
	"fmt"
	"io"

	"wecare-shop/pkg/logger"
	"wecare-shop/pkg/textfmt"
)

// nilIfEOF maps exhausted input to a clean exit so piped sessions
// terminate without an error.
func nilIfEOF(err error) error {
	if err == io.EOF {
		logger.Info().Msg("input exhausted, ending session")
		return nil
	}
	return err
}

func (s *Shop) displayWelcome() {
	fmt.Fprint(s.out, "\n\n")
	fmt.Fprintln(s.out, "\t \t \t \t "+s.info.Name)
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "\t \t \t  "+s.info.Address+" | Phone No: "+s.info.Phone)
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, textfmt.Rule("-", 80))
	fmt.Fprintln(s.out, "\t   Welcome to "+s.info.Name+"! Have a great day!")
	fmt.Fprintln(s.out, textfmt.Rule("-", 80))
}

// Run drives the main menu until the operator exits or input runs out.
// Flow and storage errors never end the loop; only choosing exit (or
// exhausted input on a non-interactive run) returns.
func (s *Shop) Run() error {
	s.displayWelcome()
	logger.Info().Int("products", s.catalog.Len()).Msg("session started")

	for {
		fmt.Fprintln(s.out, "\n================== Main Menu ========================")
		fmt.Fprintln(s.out, "1. Display Available Products")
		fmt.Fprintln(s.out, "2. Purchase Products (Restock) from the Supplier")
		fmt.Fprintln(s.out, "3. Selling the Products to the Customer")
		fmt.Fprintln(s.out, "4. Exit from the System")

		choice, err := s.prompt.Int("\nEnter your choice (1-4): ")
		if err != nil {
			return nilIfEOF(err)
		}

		switch choice {
		case 1:
			s.DisplayProducts()
		case 2:
			if err := s.PurchaseProducts(); err != nil {
				return nilIfEOF(err)
			}
		case 3:
			if err := s.SellProducts(); err != nil {
				return nilIfEOF(err)
			}
		case 4:
			fmt.Fprintln(s.out, "\nThank you for using "+s.info.Name+". Goodbye!")
			logger.Info().Msg("session ended")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please enter 1-4.")
		}
	}
}
