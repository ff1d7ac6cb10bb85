// Package rules は委任・異動の作成リクエストに共通する
// 順序付きバリデーションパイプラインを提供します。
package rules

import "context"

// Rule は単一の検証ルールです。失敗時はそのまま利用者に提示できる
// メッセージを持つエラーを返します。
type Rule struct {
	Name  string
	Check func(ctx context.Context) error
}

// Run はルールを宣言順に評価し、最初に失敗したルールのエラーを
// そのまま返します。失敗は集約しません(最初の一件で打ち切り)。
func Run(ctx context.Context, rules []Rule) error {
	for _, r := range rules {
		if r.Check == nil {
			continue
		}
		if err := r.Check(ctx); err != nil {
			return err
		}
	}
	return nil
}
