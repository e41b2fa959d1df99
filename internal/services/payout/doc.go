/*
Package payout computes the net amount owed to a seller for a date window,
after commission and refund/chargeback adjustments, in the seller's
settlement currency.

The pipeline for one request:

 1. Filter the seller's history to transactions captured inside the window.
 2. Link every refund/chargeback whose parent is in that set, regardless of
    the refund's own date (refund leak-back).
 3. Build one line item per captured transaction: refunds deducted,
    commission on the post-refund amount, each figure converted to the
    settlement currency and rounded independently.
 4. Aggregate line items into period totals and attach advisory fraud flags.

The engine only reads the ledger; every invocation allocates its own
report objects, so concurrent invocations are safe as long as the ledger
hands out consistent snapshots.
*/
package payout
